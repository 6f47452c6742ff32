package store

import (
	"time"

	"trainings-module/models"
	"trainings-module/utils"
)

func str(s string) *string { return &s }

// SeedTrainings returns the fixed initial record set used when no persisted
// collection exists yet.
func SeedTrainings() []models.Training {
	now := time.Now().UTC()

	return []models.Training{
		{
			ID:          1,
			Title:       "Full Stack Web Development Bootcamp",
			Description: "Learn HTML, CSS, JavaScript, React, and Node.js with hands-on projects.",
			Category:    utils.CategoryTech,
			Type:        utils.TypeOnline,
			Price:       150000,
			Duration:    "6 months",
			Provider:    "TechPro Academy",
			Image:       str("https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=800"),
			Status:      utils.StatusActive,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          2,
			Title:       "Digital Marketing Masterclass",
			Description: "Master SEO, social media marketing, and paid advertising.",
			Category:    utils.CategoryBusiness,
			Type:        utils.TypeOnline,
			Price:       75000,
			Duration:    "3 months",
			Provider:    "Digital Masters NG",
			Image:       str("https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800"),
			Status:      utils.StatusActive,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          3,
			Title:       "Professional Fashion Design",
			Description: "Master pattern making, sewing techniques, and fashion illustration.",
			Category:    utils.CategoryCreative,
			Type:        utils.TypePhysical,
			Price:       80000,
			Duration:    "4 months",
			Provider:    "Style Academy",
			Location:    str("Abuja"),
			City:        str("Abuja"),
			State:       str("FCT"),
			Image:       str("https://images.unsplash.com/photo-1558769132-cb1aea1f1c1c?w=800"),
			Status:      utils.StatusPending,
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          4,
			Title:       "Data Science & Analytics",
			Description: "Master Python, SQL, machine learning, and data visualization.",
			Category:    utils.CategoryTech,
			Type:        utils.TypeOnline,
			Price:       200000,
			Duration:    "5 months",
			Provider:    "Data Science NG",
			Image:       str("https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=800"),
			Status:      utils.StatusActive,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          5,
			Title:       "Professional Photography",
			Description: "Learn camera techniques, lighting, and editing.",
			Category:    utils.CategoryCreative,
			Type:        utils.TypePhysical,
			Price:       90000,
			Duration:    "5 months",
			Provider:    "Lens Masters",
			Location:    str("Ibadan"),
			City:        str("Ibadan"),
			State:       str("Oyo"),
			Image:       str("https://images.unsplash.com/photo-1542038784456-1ea8e935640e?w=800"),
			Status:      utils.StatusActive,
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          6,
			Title:       "Professional Catering",
			Description: "Learn menu planning, food preparation, and event catering.",
			Category:    utils.CategoryCreative,
			Type:        utils.TypePhysical,
			Price:       60000,
			Duration:    "3 months",
			Provider:    "Culinary Arts PH",
			Location:    str("Port Harcourt"),
			City:        str("Port Harcourt"),
			State:       str("Rivers"),
			Image:       str("https://images.unsplash.com/photo-1556910103-1c02745aae4d?w=800"),
			Status:      utils.StatusActive,
			Featured:    false,
			CreatedAt:   now,
		},
	}
}
