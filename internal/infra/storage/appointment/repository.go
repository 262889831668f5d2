package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/qb-auto/QB-AppointmentService/internal/domain"
	"github.com/qb-auto/QB-AppointmentService/pkg/dbmetrics"
	"github.com/qb-auto/QB-AppointmentService/pkg/psqlbuilder"
)

// appointmentColumns колонки записи с присоединенными данными автомобиля
var appointmentColumns = []string{
	"a.appointment_id",
	"a.customer_id",
	"a.vehicle_id",
	"a.preferred_date",
	"a.preferred_time",
	"a.status",
	"a.progress_step",
	"a.additional_notes",
	"v.vehicle_model",
	"v.license_plate_number",
	"a.created_at",
	"a.updated_at",
}

// Repository репозиторий для работы с записями на обслуживание
// Покрывает таблицы appointments и appointment_services
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на обслуживание
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"vehicle_id",
			"preferred_date",
			"preferred_time",
			"status",
			"progress_step",
			"additional_notes",
		).
		Values(
			appt.CustomerID,
			appt.VehicleID,
			appt.PreferredDate,
			appt.PreferredTime,
			string(appt.Status),
			appt.ProgressStep,
			appt.Notes,
		).
		Suffix("RETURNING appointment_id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID вместе с данными автомобиля
// Внутри транзакции блокирует строку (FOR UPDATE OF a)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		LeftJoin("vehicles v ON a.vehicle_id = v.vehicle_id").
		Where(squirrel.Eq{"a.appointment_id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return appt, nil
}

// GetByCustomerID получает все записи клиента, новые первыми
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		LeftJoin("vehicles v ON a.vehicle_id = v.vehicle_id").
		Where(squirrel.Eq{"a.customer_id": customerID}).
		OrderBy("a.appointment_id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// FindActive ищет активную запись клиента для указанного автомобиля
// (статусы Pending, Scheduled, In Progress, независимо от даты)
// Внутри транзакции блокирует найденную строку
func (r *Repository) FindActive(ctx context.Context, customerID, vehicleID int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		LeftJoin("vehicles v ON a.vehicle_id = v.vehicle_id").
		Where(squirrel.Eq{
			"a.customer_id": customerID,
			"a.vehicle_id":  vehicleID,
			"a.status":      activeStatuses,
		}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActive - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return appt, nil
}

// ListWithFilter получает записи с гибкой фильтрацией для панели администратора
// Архивные записи по умолчанию исключаются
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		LeftJoin("vehicles v ON a.vehicle_id = v.vehicle_id")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.customer_id": *filter.CustomerID})
	}
	if filter.VehicleID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.vehicle_id": *filter.VehicleID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"a.preferred_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"a.preferred_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": string(*filter.Status)})
	} else if !filter.IncludeArchived {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"a.status": string(domain.StatusArchived)})
	}

	selectBuilder = selectBuilder.OrderBy("a.preferred_date DESC, a.appointment_id DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus обновляет статус записи
// progressStep передается, когда новый статус требует согласованного шага
// (инвариант соответствия статуса и шага прогресса)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, progressStep *int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("appointments").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"appointment_id": id})

	if progressStep != nil {
		updateBuilder = updateBuilder.Set("progress_step", *progressStep)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Cancel отменяет запись, дописывая причину в конец заметок
// Ранее накопленные заметки не затираются
func (r *Repository) Cancel(ctx context.Context, id int64, noteAppend string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", string(domain.StatusCancelled)).
		Set("additional_notes", squirrel.Expr("COALESCE(additional_notes, '') || ?", noteAppend)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"appointment_id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Reschedule переносит запись: новые дата, время и заметки,
// статус сбрасывается в Pending, шаг прогресса в 0
func (r *Repository) Reschedule(ctx context.Context, id int64, appt *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("preferred_date", appt.PreferredDate).
		Set("preferred_time", appt.PreferredTime).
		Set("additional_notes", appt.Notes).
		Set("status", string(domain.StatusPending)).
		Set("progress_step", 0).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"appointment_id": id}).
		Where(squirrel.NotEq{"status": string(domain.StatusCompleted)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// GetServices возвращает названия услуг записи
func (r *Repository) GetServices(ctx context.Context, appointmentID int64) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("service_name").
		From("appointment_services").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("service_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: GetServices - scan service_name: %v", ErrScanRow, err)
		}
		services = append(services, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// ReplaceServices полностью заменяет набор услуг записи
// Старые строки удаляются, новые вставляются одним батчем
func (r *Repository) ReplaceServices(ctx context.Context, appointmentID int64, services []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("appointment_services").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceServices - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceServices - execute delete: %v", ErrExecQuery, err)
	}

	if len(services) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("appointment_services").
		Columns("appointment_id", "service_name")

	for _, name := range services {
		insertBuilder = insertBuilder.Values(appointmentID, name)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceServices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует одну строку результата в domain.Appointment
// Статус проходит через канонический парсер; нераспознанные значения отклоняются
func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var rawStatus sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.CustomerID,
		&appt.VehicleID,
		&appt.PreferredDate,
		&appt.PreferredTime,
		&rawStatus,
		&appt.ProgressStep,
		&appt.Notes,
		&appt.VehicleModel,
		&appt.LicensePlate,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanAppointment - scan row: %v", ErrScanRow, err)
	}

	status, err := domain.ParseStatus(rawStatus.String)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, rawStatus.String)
	}

	appt.Status = status
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
