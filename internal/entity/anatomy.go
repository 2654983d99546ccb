package entity

import "time"

type DescriptionOverride struct {
	Structure   string    `db:"structure"`
	Description string    `db:"description"`
	UpdatedBy   string    `db:"updated_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type PartDocument struct {
	PartID    string    `db:"part_id"`
	Source    string    `db:"source"`
	Document  []byte    `db:"document"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type AdminLoginData struct {
	ID    string
	Email string
}
