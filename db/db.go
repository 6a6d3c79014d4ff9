package db

import (
	"context"
	"strings"

	"github.com/jsphweid/harmonia/logger"
	"github.com/jsphweid/harmonia/model"
	"github.com/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

var ErrItem = errors.New("malformed catalog item")

// Item kinds, the part of PK before '#': "scale#dorian".
const (
	KindScale  = "scale"
	KindChord  = "chord"
	KindTuning = "tuning"
)

// CatalogSource reads catalog definitions from a DynamoDB table. Every item
// is keyed by PK = "<kind>#<id>" and carries the definition's fields as
// attributes: Name, Intervals, Symbol, Categories (SS), Aliases (SS),
// Instrument, Pitches.
type CatalogSource struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewCatalogSource(client dynamodbiface.DynamoDBAPI, table string) *CatalogSource {
	return &CatalogSource{client: client, table: table}
}

// Connect opens a session against endpoint, or the default AWS endpoint for
// region when endpoint is empty.
func Connect(endpoint, region, table string) (*CatalogSource, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not create a DynamoDB session")
	}
	return NewCatalogSource(dynamodb.New(sess), table), nil
}

func (s *CatalogSource) Table() string {
	return s.table
}

// Definitions scans the whole table. Items of an unknown kind are skipped
// with a warning; a malformed item fails the scan.
func (s *CatalogSource) Definitions(ctx context.Context) (*model.Definitions, error) {
	defs := &model.Definitions{}
	var itemErr error
	input := &dynamodb.ScanInput{TableName: aws.String(s.table)}
	err := s.client.ScanPagesWithContext(ctx, input, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		for _, item := range page.Items {
			if err := addItem(defs, item); err != nil {
				itemErr = err
				return false
			}
		}
		return true
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scan of %s failed", s.table)
	}
	if itemErr != nil {
		return nil, errors.Wrapf(itemErr, "table %s", s.table)
	}
	logger.Debug("scanned catalog table", logger.Fields{"table": s.table, "definitions": defs.Len()})
	return defs, nil
}

func addItem(defs *model.Definitions, item map[string]*dynamodb.AttributeValue) error {
	pk := str(item, "PK")
	kind, id, ok := strings.Cut(pk, "#")
	if !ok || id == "" {
		return errors.Wrapf(ErrItem, "PK %q", pk)
	}

	switch kind {
	case KindScale:
		defs.Scales = append(defs.Scales, model.ScaleDefinition{
			ID:         id,
			Name:       nameOr(item, id),
			Intervals:  str(item, "Intervals"),
			Categories: strSet(item, "Categories"),
			Aliases:    strSet(item, "Aliases"),
		})
	case KindChord:
		defs.Chords = append(defs.Chords, model.ChordDefinition{
			ID:        id,
			Name:      nameOr(item, id),
			Symbol:    str(item, "Symbol"),
			Intervals: str(item, "Intervals"),
			Aliases:   strSet(item, "Aliases"),
		})
	case KindTuning:
		defs.Tunings = append(defs.Tunings, model.TuningDefinition{
			ID:         id,
			Name:       nameOr(item, id),
			Instrument: str(item, "Instrument"),
			Pitches:    str(item, "Pitches"),
			Aliases:    strSet(item, "Aliases"),
		})
	default:
		logger.Warn("skipping catalog item of unknown kind", logger.Fields{"pk": pk})
	}
	return nil
}

func str(item map[string]*dynamodb.AttributeValue, key string) string {
	if v, ok := item[key]; ok && v != nil {
		return aws.StringValue(v.S)
	}
	return ""
}

func strSet(item map[string]*dynamodb.AttributeValue, key string) []string {
	v, ok := item[key]
	if !ok || v == nil {
		return nil
	}
	if len(v.SS) > 0 {
		return aws.StringValueSlice(v.SS)
	}
	var res []string
	for _, el := range v.L {
		if el != nil && el.S != nil {
			res = append(res, *el.S)
		}
	}
	return res
}

func nameOr(item map[string]*dynamodb.AttributeValue, fallback string) string {
	if name := str(item, "Name"); name != "" {
		return name
	}
	return fallback
}
