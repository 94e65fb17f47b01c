package domain

import "time"

type Person struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// FullName dipakai untuk log dan payload event.
func (p Person) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

type Client struct {
	ID        int64     `json:"id"`
	NIT       string    `json:"nit"`
	Person    Person    `json:"person"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientRequest adalah data client yang dikirim bersama sebuah penjualan.
type ClientRequest struct {
	NIT       string `json:"nit" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}
