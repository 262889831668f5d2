package domain

import (
	"strings"
	"time"
)

// ContactChannel предпочтительный канал связи с клиентом
type ContactChannel string

const (
	ContactEmail ContactChannel = "Email"
	ContactPhone ContactChannel = "Phone"
)

// Customer represents a registered customer account
// Password and profile photo are owned by the auth collaborator
type Customer struct {
	ID               int64
	FullName         string
	Email            string
	Phone            string
	PreferredContact ContactChannel
	MemberSince      time.Time
	ProfilePhoto     *string
}

// NormalizePhone убирает из номера все символы, кроме цифр
// Сравнение телефонов всегда идет по нормализованной форме
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
