// Package repo provides postgres access for seo report history
package repo

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"time"

	"listingseo/internal/core/scorer"
	"listingseo/internal/modkit/repokit"
	perr "listingseo/internal/platform/errors"
	"listingseo/internal/services/api/seo/domain"
)

//go:embed schema.sql
var schema string

// Reports is the persistence surface for scored reports
type Reports interface {
	Insert(ctx context.Context, r domain.StoredReport) error
	Get(ctx context.Context, id string) (domain.StoredReport, error)
	List(ctx context.Context, q domain.ListQuery) ([]domain.ReportSummary, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Reports interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Reports] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Reports { return &queries{q: q} }

// Migrate creates the report tables when missing
func Migrate(ctx context.Context, q repokit.Queryer) error {
	if err := repokit.Migrate(ctx, q, repokit.SplitSQL(schema)); err != nil {
		return perr.FromPostgres(err, "migrate seo_reports")
	}
	return nil
}

func (r *queries) Insert(ctx context.Context, rep domain.StoredReport) error {
	const sql = `
insert into seo_reports (
	id, listing_ref, title, description, tags, locale,
	overall_score, grade, title_score, description_score, tag_score, keyword_score,
	report, created_at
) values ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::jsonb, $14)`

	doc, err := json.Marshal(rep.Report)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "encode report")
	}
	tags := rep.Tags
	if tags == nil {
		tags = []string{}
	}
	b := rep.Report.Breakdown
	err = repokit.ExecOne(ctx, r.q, sql,
		rep.ID, rep.ListingRef, rep.Title, rep.Description, tags, rep.Locale,
		rep.Report.OverallScore, rep.Report.Grade,
		b.TitleScore, b.DescriptionScore, b.TagScore, b.KeywordScore,
		string(doc), rep.CreatedAt,
	)
	return perr.FromPostgres(err, "insert report")
}

func (r *queries) Get(ctx context.Context, id string) (domain.StoredReport, error) {
	const sql = `
select id::text, listing_ref, title, description, tags, locale, created_at, report
from seo_reports
where id = $1::uuid`

	out, err := repokit.One(ctx, r.q, scanStored, sql, id)
	if errors.Is(err, repokit.ErrNoRows) {
		return domain.StoredReport{}, err
	}
	return out, perr.FromPostgres(err, "get report")
}

func (r *queries) List(ctx context.Context, q domain.ListQuery) ([]domain.ReportSummary, error) {
	const sql = `
select id::text, listing_ref, overall_score, grade, created_at
from seo_reports
where ($1 = '' or listing_ref = $1)
order by created_at desc, id desc
limit $2`

	out, err := repokit.Many(ctx, r.q, scanSummary, sql, q.ListingRef, q.Limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list reports")
	}
	return out, nil
}

func scanStored(row repokit.Row) (domain.StoredReport, error) {
	var (
		out domain.StoredReport
		doc []byte
	)
	if err := row.Scan(&out.ID, &out.ListingRef, &out.Title, &out.Description,
		&out.Tags, &out.Locale, &out.CreatedAt, &doc); err != nil {
		return out, err
	}
	var rep scorer.Report
	if err := json.Unmarshal(doc, &rep); err != nil {
		return out, perr.Wrap(err, perr.ErrorCodeUnknown, "decode stored report")
	}
	out.Report = rep
	out.CreatedAt = out.CreatedAt.UTC()
	return out, nil
}

func scanSummary(row repokit.Row) (domain.ReportSummary, error) {
	var (
		out     domain.ReportSummary
		created time.Time
	)
	err := row.Scan(&out.ID, &out.ListingRef, &out.OverallScore, &out.Grade, &created)
	out.CreatedAt = created.UTC()
	return out, err
}
