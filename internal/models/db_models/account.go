package db_models

type Account struct {
	BaseModel
	DisplayName  string
	Email        string `gorm:"unique"`
	PasswordHash string

	Trips []Trip `gorm:"foreignKey:OwnerID"`
}
