package postgres

import (
	"context"
	"fmt"
	"realtors/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	propertiesTable = "properties"
	imagesTable     = "images"
	thumbnailsTable = "thumbnails"
)

func (p *PgSQL) StoreProperty(ctx context.Context, property domain.Property) (*domain.Property, error) {
	var row PgProperty
	if _, err := p.Builder.Insert(propertiesTable).
		Rows(PgProperty{Title: property.Title}).
		Returning(&PgProperty{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store property into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreImage(ctx context.Context, image domain.Image) (*domain.Image, error) {
	var row PgImage
	if _, err := p.Builder.Insert(imagesTable).
		Rows(PgImage{PropertyID: int64(image.PropertyID), Path: image.Path}).
		Returning(&PgImage{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store image into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ImagesByProperty(ctx context.Context, propertyID domain.PropertyID) ([]domain.Image, error) {
	var rows []PgImage
	if err := p.Builder.From(imagesTable).
		Where(goqu.I("property_id").Eq(int64(propertyID))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch property images from pg: %w", err)
	}

	out := make([]domain.Image, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StoreThumbnail(ctx context.Context, thumbnail domain.Thumbnail) (*domain.Thumbnail, error) {
	var row PgThumbnail
	if _, err := p.Builder.Insert(thumbnailsTable).
		Rows(PgThumbnail{ImageID: int64(thumbnail.ImageID), Path: thumbnail.Path}).
		Returning(&PgThumbnail{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, translateError(err, "could not store thumbnail into pg")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ThumbnailByImage(ctx context.Context, imageID domain.ImageID) (*domain.Thumbnail, error) {
	var row PgThumbnail
	found, err := p.Builder.From(thumbnailsTable).
		Where(goqu.I("image_id").Eq(int64(imageID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch thumbnail from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
