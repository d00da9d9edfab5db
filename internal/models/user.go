package models

// None is the literal value stored for an empty profile field. The
// registration form writes it for blank preferences, restrictions and
// goals, and the restriction expander treats it as "no restriction".
const None = "없음"

// User represents a dietary profile. Profiles carry no credentials:
// the companion UI selects one and opens a session for it.
type User struct {
	UserID                uint   `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username              string `gorm:"column:username;size:50;not null" json:"username"`
	Preferences           string `gorm:"column:preferences" json:"preferences"`
	RestrictionsAllergies string `gorm:"column:restrictions_allergies" json:"restrictions_allergies"`
	RestrictionsOther     string `gorm:"column:restrictions_other" json:"restrictions_other"`
	Goals                 string `gorm:"column:goals" json:"goals"`
	Budget                int    `gorm:"column:budget;default:0" json:"budget"`
}

func (User) TableName() string {
	return "users"
}
