package model

// swagger:model UserProfile
type UserProfile struct {
	BaseModel

	UserID   uint   `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	Headline string `gorm:"size:200" json:"headline"`
	Bio      string `gorm:"type:text" json:"bio"`
	Phone    string `gorm:"size:20" json:"phone"`
	Avatar   string `gorm:"size:255" json:"avatar"`
	Location string `gorm:"size:100" json:"location"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// BankDetail is the payout account for a candidate, one per user.
type BankDetail struct {
	BaseModel

	UserID        uint   `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	AccountHolder string `gorm:"size:100" json:"accountHolder"`
	AccountNumber string `gorm:"size:34" json:"accountNumber"`
	BankName      string `gorm:"size:100" json:"bankName"`
	IFSCCode      string `gorm:"size:20" json:"ifscCode"`
}

func (BankDetail) TableName() string {
	return "bank_details"
}

// swagger:model Education
type Education struct {
	BaseModel

	UserID      uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Institution string `gorm:"size:200;not null" json:"institution"`
	Degree      string `gorm:"size:100" json:"degree"`
	Field       string `gorm:"size:100" json:"field"`
	StartYear   int    `json:"startYear"`
	EndYear     int    `json:"endYear"`
}

func (Education) TableName() string {
	return "educations"
}

// swagger:model SocialLink
type SocialLink struct {
	BaseModel

	UserID   uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Platform string `gorm:"size:50;not null" json:"platform"` // github, linkedin, portfolio, ...
	URL      string `gorm:"size:255;not null" json:"url"`
}

func (SocialLink) TableName() string {
	return "social_links"
}
