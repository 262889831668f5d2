package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	"github.com/qb-auto/QB-AppointmentService/pkg/dbmetrics"
	"github.com/qb-auto/QB-AppointmentService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с клиентами
// Пароль и фото профиля принадлежат auth-слою и здесь не изменяются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"customer_id",
		"full_name",
		"email",
		"phone",
		"preferred_contact",
		"member_since",
		"profile_photo",
	).
		From("customers").
		Where(squirrel.Eq{"customer_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Customer
	var preferredContact sql.NullString
	var memberSince sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.FullName,
		&c.Email,
		&c.Phone,
		&preferredContact,
		&memberSince,
		&c.ProfilePhoto,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %v", ErrScanRow, err)
	}

	c.PreferredContact = domain.ContactChannel(preferredContact.String)
	c.MemberSince = memberSince.Time

	return &c, nil
}

// GetPhone возвращает зарегистрированный телефон клиента
// Используется проверкой соответствия телефона при бронировании
func (r *Repository) GetPhone(ctx context.Context, id int64) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("phone").
		From("customers").
		Where(squirrel.Eq{"customer_id": id}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: GetPhone - build select query: %v", ErrBuildQuery, err)
	}

	var phone string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&phone)
	if err == sql.ErrNoRows {
		return "", ErrCustomerNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetPhone - scan phone: %v", ErrScanRow, err)
	}

	return phone, nil
}

// UpdateProfile обновляет имя, email, телефон и предпочтительный канал связи
// Уникальность email и телефона обеспечивают индексы БД; нарушение
// транслируется в ErrEmailTaken / ErrPhoneTaken по имени constraint
func (r *Repository) UpdateProfile(ctx context.Context, c *domain.Customer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("full_name", c.FullName).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("preferred_contact", string(c.PreferredContact)).
		Where(squirrel.Eq{"customer_id": c.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			if strings.Contains(pqErr.Constraint, "phone") {
				return ErrPhoneTaken
			}
			return ErrEmailTaken
		}
		return fmt.Errorf("%w: UpdateProfile - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}
