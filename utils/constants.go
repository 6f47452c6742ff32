package utils

// Training Status Constants
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Training Type Constants
const (
	TypeOnline   = "online"
	TypePhysical = "physical"
)

// Category Constants
const (
	CategoryTech     = "tech"
	CategoryBusiness = "business"
	CategoryCreative = "creative"
)

// Persistence slot keys
const (
	TrainingsSlot   = "naijatrainings_data"
	EnrollmentsSlot = "naijatrainings_enrollments"
	AdminLoginSlot  = "adminLoggedIn"
)

// Page sizes per view
const (
	AdminPageSize  = 10
	PublicPageSize = 6
)
