package repositories

import (
	"context"

	apperrors "homescout-listings/internal/errors"
	"homescout-listings/internal/models"
	"homescout-listings/internal/transformers"
	"homescout-listings/pkg/tablestore"
)

const propertyTable = "property_c"

// tablePropertyRepository backs the Property Store with the hosted table
// API. Numeric filter hints become server-side where clauses; text hints
// are left to the query engine.
type tablePropertyRepository struct {
	client *tablestore.Client
	trans  transformers.RecordTransformer
}

func NewTablePropertyRepository(client *tablestore.Client) PropertyRepository {
	return &tablePropertyRepository{
		client: client,
		trans:  transformers.NewRecordTransformer(),
	}
}

func (r *tablePropertyRepository) GetAll(ctx context.Context, hints *models.FilterSpec) ([]models.Property, error) {
	params := tablestore.FetchParams{
		OrderBy: []tablestore.OrderBy{{FieldName: "listing_date_c", SortType: "DESC"}},
	}

	if hints != nil {
		if hints.PriceMin != nil {
			params.Where = append(params.Where, tablestore.Condition{
				FieldName: "price_c", Operator: "GreaterThanOrEqualTo", Values: []interface{}{*hints.PriceMin},
			})
		}
		if hints.PriceMax != nil {
			params.Where = append(params.Where, tablestore.Condition{
				FieldName: "price_c", Operator: "LessThanOrEqualTo", Values: []interface{}{*hints.PriceMax},
			})
		}
		if hints.Bedrooms != nil {
			params.Where = append(params.Where, tablestore.Condition{
				FieldName: "bedrooms_c", Operator: "GreaterThanOrEqualTo", Values: []interface{}{*hints.Bedrooms},
			})
		}
		if hints.Bathrooms != nil {
			params.Where = append(params.Where, tablestore.Condition{
				FieldName: "bathrooms_c", Operator: "GreaterThanOrEqualTo", Values: []interface{}{*hints.Bathrooms},
			})
		}
		// No text conditions: the table API's ExactMatch and Contains
		// operators are case-sensitive, while type and location matching
		// are not. Text fields are matched by the engine only.
	}

	records, err := r.client.FetchRecords(ctx, propertyTable, params)
	if err != nil {
		return nil, err
	}

	properties := make([]models.Property, 0, len(records))
	for _, record := range records {
		property, err := r.trans.TransformRecord(record)
		if err != nil {
			continue
		}
		properties = append(properties, *property)
	}
	return properties, nil
}

func (r *tablePropertyRepository) GetByID(ctx context.Context, id int) (*models.Property, error) {
	record, err := r.client.GetRecordByID(ctx, propertyTable, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.ErrPropertyNotFound
	}
	return r.trans.TransformRecord(record)
}
