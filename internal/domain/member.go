package domain

// Team is the chapter team a member belongs to.
type Team string

// Teams.
const (
	TeamManagement Team = "management"
	TeamTechnical  Team = "technical"
	TeamMarketing  Team = "marketing"
	TeamDesign     Team = "design"
)

// MemberStatus is the membership status.
type MemberStatus string

// Member statuses.
const (
	MemberActive   MemberStatus = "active"
	MemberAlumni   MemberStatus = "alumni"
	MemberInactive MemberStatus = "inactive"
)

// Member represents a chapter member. Slug is derived from Name on create
// and is unique among members.
// swagger:model Member
type Member struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Role       string       `json:"role"`
	Department string       `json:"department"`
	Year       string       `json:"year"`
	Team       Team         `json:"team"`
	Status     MemberStatus `json:"status"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	LinkedIn   string       `json:"linkedin"`
	GitHub     string       `json:"github"`
	Bio        string       `json:"bio"`
	Skills     []string     `json:"skills"`
	Image      string       `json:"image"`
	JoinDate   string       `json:"joinDate"`
	Slug       string       `json:"slug"`
}

// MemberPatch is a shallow-merge update for a member. Nil fields are
// unchanged. Slug is not patchable; it is fixed at create time.
type MemberPatch struct {
	Name       *string       `json:"name"`
	Role       *string       `json:"role"`
	Department *string       `json:"department"`
	Year       *string       `json:"year"`
	Team       *Team         `json:"team"`
	Status     *MemberStatus `json:"status"`
	Email      *string       `json:"email"`
	Phone      *string       `json:"phone"`
	LinkedIn   *string       `json:"linkedin"`
	GitHub     *string       `json:"github"`
	Bio        *string       `json:"bio"`
	Skills     []string      `json:"skills"`
	Image      *string       `json:"image"`
	JoinDate   *string       `json:"joinDate"`
}

// Apply merges the patch onto m, field by field.
func (p MemberPatch) Apply(m *Member) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Department != nil {
		m.Department = *p.Department
	}
	if p.Year != nil {
		m.Year = *p.Year
	}
	if p.Team != nil {
		m.Team = *p.Team
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Phone != nil {
		m.Phone = *p.Phone
	}
	if p.LinkedIn != nil {
		m.LinkedIn = *p.LinkedIn
	}
	if p.GitHub != nil {
		m.GitHub = *p.GitHub
	}
	if p.Bio != nil {
		m.Bio = *p.Bio
	}
	if p.Skills != nil {
		m.Skills = append([]string(nil), p.Skills...)
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.JoinDate != nil {
		m.JoinDate = *p.JoinDate
	}
}

// MemberFilter selects members. Search matches name, role, and department
// case-insensitively; Team, Year, and Status are exact. "all" bypasses.
type MemberFilter struct {
	Search string
	Team   string
	Year   string
	Status string
}

// MemberStats are the aggregate counters shown on the members page.
// swagger:model MemberStats
type MemberStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Alumni int `json:"alumni"`
	Teams  int `json:"teams"`
}
