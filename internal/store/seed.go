// Package store provides the catalog persistence drivers and the built-in
// seed catalog used when no persisted blob exists yet.
package store

import "chapterhub/internal/domain"

// Seed returns the built-in example catalog. Both drivers fall back to it
// when the persisted blob is missing or unreadable.
func Seed() *domain.Catalog {
	return &domain.Catalog{
		Events: []*domain.Event{
			{
				ID:               "1",
				Title:            "AI & Machine Learning Workshop",
				Description:      "Comprehensive workshop covering fundamentals of AI and ML with hands-on projects.",
				Date:             "2024-02-15",
				Time:             "10:00 AM",
				Location:         "Computer Lab A",
				Type:             domain.EventWorkshop,
				Status:           domain.EventUpcoming,
				Image:            "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=800&h=600&fit=crop",
				RegistrationLink: "#",
				Organizer:        "Technical Team",
			},
			{
				ID:               "2",
				Title:            "IEEE Day Celebration 2024",
				Description:      "Annual celebration of IEEE Day with technical presentations and networking.",
				Date:             "2024-10-01",
				Time:             "2:00 PM",
				Location:         "Main Auditorium",
				Type:             domain.EventCelebration,
				Status:           domain.EventCompleted,
				Image:            "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&h=600&fit=crop",
				RegistrationLink: "#",
				Organizer:        "Management Team",
			},
			{
				ID:               "3",
				Title:            "Coding Competition 2024",
				Description:      "Inter-college coding competition with exciting prizes and recognition.",
				Date:             "2024-03-20",
				Time:             "9:00 AM",
				Location:         "Computer Center",
				Type:             domain.EventCompetition,
				Status:           domain.EventUpcoming,
				Image:            "https://images.unsplash.com/photo-1517077304055-6e89abbf09b0?w=800&h=600&fit=crop",
				RegistrationLink: "#",
				Organizer:        "Technical Team",
			},
		},
		Members: []*domain.Member{
			{
				ID:         "1",
				Name:       "Sarah Johnson",
				Role:       "Chapter President",
				Department: "Computer Science",
				Year:       "2024",
				Team:       domain.TeamManagement,
				Status:     domain.MemberActive,
				Email:      "sarah.johnson@college.edu",
				Phone:      "+1 234 567 8901",
				LinkedIn:   "https://linkedin.com/in/sarahjohnson",
				GitHub:     "https://github.com/sarahjohnson",
				Bio:        "Passionate about technology and leadership, leading the IEEE chapter towards innovation and excellence.",
				Skills:     []string{"Leadership", "Project Management", "Python", "React"},
				Image:      "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=400&h=400&fit=crop&crop=face",
				JoinDate:   "2022-08-15",
				Slug:       "sarah-johnson",
			},
			{
				ID:         "2",
				Name:       "Michael Chen",
				Role:       "Technical Lead",
				Department: "Electrical Engineering",
				Year:       "2024",
				Team:       domain.TeamTechnical,
				Status:     domain.MemberActive,
				Email:      "michael.chen@college.edu",
				Phone:      "+1 234 567 8902",
				LinkedIn:   "https://linkedin.com/in/michaelchen",
				GitHub:     "https://github.com/michaelchen",
				Bio:        "Expert in embedded systems and IoT, passionate about bridging the gap between hardware and software.",
				Skills:     []string{"Embedded Systems", "IoT", "C++", "Arduino", "PCB Design"},
				Image:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
				JoinDate:   "2022-09-01",
				Slug:       "michael-chen",
			},
			{
				ID:         "3",
				Name:       "Emily Rodriguez",
				Role:       "Marketing Head",
				Department: "Information Technology",
				Year:       "2025",
				Team:       domain.TeamMarketing,
				Status:     domain.MemberActive,
				Email:      "emily.rodriguez@college.edu",
				Phone:      "+1 234 567 8903",
				LinkedIn:   "https://linkedin.com/in/emilyrodriguez",
				GitHub:     "https://github.com/emilyrodriguez",
				Bio:        "Creative marketer with a passion for technology communication and community building.",
				Skills:     []string{"Digital Marketing", "Content Creation", "Social Media", "Graphic Design"},
				Image:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop&crop=face",
				JoinDate:   "2023-01-15",
				Slug:       "emily-rodriguez",
			},
			{
				ID:         "4",
				Name:       "David Kim",
				Role:       "Alumni Mentor",
				Department: "Computer Science",
				Year:       "2023",
				Team:       domain.TeamTechnical,
				Status:     domain.MemberAlumni,
				Email:      "david.kim@techcorp.com",
				Phone:      "+1 234 567 8904",
				LinkedIn:   "https://linkedin.com/in/davidkim",
				GitHub:     "https://github.com/davidkim",
				Bio:        "Software engineer at a leading tech company, mentoring current students in career development.",
				Skills:     []string{"Full Stack Development", "Cloud Computing", "Mentoring", "System Design"},
				Image:      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face",
				JoinDate:   "2021-08-20",
				Slug:       "david-kim",
			},
		},
		BlogPosts: []*domain.BlogPost{
			{
				ID:       "1",
				Title:    "The Future of Artificial Intelligence in Engineering",
				Excerpt:  "Exploring how AI is revolutionizing various engineering disciplines and what it means for future engineers.",
				Content:  "Artificial Intelligence is transforming the engineering landscape...",
				Author:   "Sarah Johnson",
				Date:     "2024-01-15",
				Image:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800&h=600&fit=crop",
				Tags:     []string{"AI", "Engineering", "Technology"},
				Slug:     "future-of-ai-in-engineering",
				Featured: true,
			},
			{
				ID:       "2",
				Title:    "IEEE Student Chapter: Building Tomorrow's Engineers",
				Excerpt:  "How our IEEE student chapter is preparing students for the challenges of tomorrow's engineering world.",
				Content:  "Our IEEE student chapter has been at the forefront...",
				Author:   "Michael Chen",
				Date:     "2024-01-10",
				Image:    "https://images.unsplash.com/photo-1523240795612-9a054b0db644?w=800&h=600&fit=crop",
				Tags:     []string{"IEEE", "Education", "Students"},
				Slug:     "building-tomorrows-engineers",
				Featured: false,
			},
		},
		Gallery: []*domain.GalleryItem{
			{
				ID:       "1",
				Title:    "AI Workshop 2024",
				Image:    "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=800&h=600&fit=crop",
				Category: domain.GalleryWorkshop,
				Date:     "2024-01-15",
			},
			{
				ID:       "2",
				Title:    "IEEE Day Celebration",
				Image:    "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&h=600&fit=crop",
				Category: domain.GalleryEvent,
				Date:     "2023-10-01",
			},
			{
				ID:       "3",
				Title:    "Technical Presentation",
				Image:    "https://images.unsplash.com/photo-1517077304055-6e89abbf09b0?w=800&h=600&fit=crop",
				Category: domain.GalleryPresentation,
				Date:     "2024-01-20",
			},
			{
				ID:       "4",
				Title:    "Team Building Activity",
				Image:    "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=800&h=600&fit=crop",
				Category: domain.GallerySocial,
				Date:     "2024-01-25",
			},
		},
		FormSubmissions: []*domain.FormSubmission{
			{
				ID:      "1",
				Type:    domain.SubmissionContact,
				Name:    "John Doe",
				Email:   "john.doe@example.com",
				Subject: "Inquiry about membership",
				Message: "I would like to know more about joining the IEEE chapter.",
				Date:    "2024-01-20",
				Status:  domain.SubmissionUnread,
			},
			{
				ID:         "2",
				Type:       domain.SubmissionJoin,
				Name:       "Jane Smith",
				Email:      "jane.smith@college.edu",
				Department: "Computer Science",
				Year:       "2025",
				Reason:     "I want to enhance my technical skills and network with like-minded peers.",
				Date:       "2024-01-18",
				Status:     domain.SubmissionReviewed,
			},
		},
	}
}
