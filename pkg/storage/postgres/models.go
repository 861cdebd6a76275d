package postgres

import (
	"database/sql"
	"realtors/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgUser is the row shape of the users table.
type PgUser struct {
	ID        uuid.UUID    `db:"id"`
	Name      string       `db:"name"`
	Email     string       `db:"email"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:        domain.UserID(p.ID),
		Name:      p.Name,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

// PgRealtor is the row shape of the realtors table.
type PgRealtor struct {
	ID     int64     `db:"id"      goqu:"skipinsert"`
	Phone  string    `db:"phone"`
	UserID uuid.UUID `db:"user_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgRealtor) ToDomain() *domain.Realtor {
	return &domain.Realtor{
		ID:        domain.RealtorID(p.ID),
		Phone:     p.Phone,
		UserID:    domain.UserID(p.UserID),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgRealtor) FromDomain(realtor domain.Realtor) {
	*p = PgRealtor{
		ID:        int64(realtor.ID),
		Phone:     realtor.Phone,
		UserID:    uuid.UUID(realtor.UserID),
		CreatedAt: realtor.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  realtor.UpdatedAt,
			Valid: !realtor.UpdatedAt.IsZero(),
		},
	}
}

// PgRealtorView is the row shape of the realtors ⨝ users projection.
type PgRealtorView struct {
	ID        int64     `db:"id"`
	Phone     string    `db:"phone"`
	UserID    uuid.UUID `db:"user_id"`
	UserName  string    `db:"user_name"`
	UserEmail string    `db:"user_email"`
}

func (p *PgRealtorView) ToDomain() domain.RealtorView {
	return domain.RealtorView{
		ID:        domain.RealtorID(p.ID),
		Phone:     p.Phone,
		UserID:    domain.UserID(p.UserID),
		UserName:  p.UserName,
		UserEmail: p.UserEmail,
	}
}

func pgRealtorViewsToDomain(rows []PgRealtorView) []domain.RealtorView {
	out := make([]domain.RealtorView, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

// PgProperty is the row shape of the properties table.
type PgProperty struct {
	ID        int64     `db:"id"         goqu:"skipinsert"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgProperty) ToDomain() *domain.Property {
	return &domain.Property{
		ID:        domain.PropertyID(p.ID),
		Title:     p.Title,
		CreatedAt: p.CreatedAt,
	}
}

// PgImage is the row shape of the images table.
type PgImage struct {
	ID         int64     `db:"id"          goqu:"skipinsert"`
	PropertyID int64     `db:"property_id"`
	Path       string    `db:"path"`
	CreatedAt  time.Time `db:"created_at"  goqu:"skipinsert"`
}

func (p *PgImage) ToDomain() *domain.Image {
	return &domain.Image{
		ID:         domain.ImageID(p.ID),
		PropertyID: domain.PropertyID(p.PropertyID),
		Path:       p.Path,
		CreatedAt:  p.CreatedAt,
	}
}

// PgThumbnail is the row shape of the thumbnails table.
type PgThumbnail struct {
	ID        int64     `db:"id"         goqu:"skipinsert"`
	ImageID   int64     `db:"image_id"`
	Path      string    `db:"path"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgThumbnail) ToDomain() *domain.Thumbnail {
	return &domain.Thumbnail{
		ID:        domain.ThumbnailID(p.ID),
		ImageID:   domain.ImageID(p.ImageID),
		Path:      p.Path,
		CreatedAt: p.CreatedAt,
	}
}
