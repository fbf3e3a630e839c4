package repositories

import (
	"context"
	"errors"

	"tailor-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MeasurementRepository struct {
	DB Querier
}

func NewMeasurementRepository(db *pgxpool.Pool) *MeasurementRepository {
	return &MeasurementRepository{DB: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *MeasurementRepository) WithTx(q Querier) *MeasurementRepository {
	return &MeasurementRepository{DB: q}
}

const measurementColumns = `
	id, phone_number,
	pant_length, pant_kamar, pant_hips, pant_waist, pant_ghutna, pant_bottom, pant_seat,
	side_p_cross, plates, belt, back_p, wp,
	shirt_length, shirt_body, shirt_loose, shirt_shoulder, shirt_astin, shirt_collar, shirt_aloose,
	callar, cuff, pkt, loose_shirt, dt_tt,
	extra_measurements`

func scanMeasurement(row pgx.Row) (*models.Measurement, error) {
	m := &models.Measurement{}
	err := row.Scan(
		&m.ID, &m.PhoneNumber,
		&m.PantLength, &m.PantKamar, &m.PantHips, &m.PantWaist, &m.PantGhutna, &m.PantBottom, &m.PantSeat,
		&m.SidePCross, &m.Plates, &m.Belt, &m.BackP, &m.WP,
		&m.ShirtLength, &m.ShirtBody, &m.ShirtLoose, &m.ShirtShoulder, &m.ShirtAstin, &m.ShirtCollar, &m.ShirtAloose,
		&m.Collar, &m.Cuff, &m.Pkt, &m.LooseShirt, &m.DTTT,
		&m.ExtraMeasurements,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// GetByPhone returns the stored measurements for a phone number, or nil when
// the customer has none yet.
func (r *MeasurementRepository) GetByPhone(ctx context.Context, phone string) (*models.Measurement, error) {
	query := `SELECT` + measurementColumns + ` FROM measurements WHERE phone_number = $1`

	m, err := scanMeasurement(r.DB.QueryRow(ctx, query, phone))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Upsert writes the full measurement row for its phone number, inserting or
// replacing as needed. Callers merge incoming fields into the stored row
// first, so a full-row write here never loses data.
func (r *MeasurementRepository) Upsert(ctx context.Context, m *models.Measurement) error {
	query := `
		INSERT INTO measurements (
			phone_number,
			pant_length, pant_kamar, pant_hips, pant_waist, pant_ghutna, pant_bottom, pant_seat,
			side_p_cross, plates, belt, back_p, wp,
			shirt_length, shirt_body, shirt_loose, shirt_shoulder, shirt_astin, shirt_collar, shirt_aloose,
			callar, cuff, pkt, loose_shirt, dt_tt,
			extra_measurements
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		ON CONFLICT (phone_number) DO UPDATE SET
			pant_length = EXCLUDED.pant_length,
			pant_kamar = EXCLUDED.pant_kamar,
			pant_hips = EXCLUDED.pant_hips,
			pant_waist = EXCLUDED.pant_waist,
			pant_ghutna = EXCLUDED.pant_ghutna,
			pant_bottom = EXCLUDED.pant_bottom,
			pant_seat = EXCLUDED.pant_seat,
			side_p_cross = EXCLUDED.side_p_cross,
			plates = EXCLUDED.plates,
			belt = EXCLUDED.belt,
			back_p = EXCLUDED.back_p,
			wp = EXCLUDED.wp,
			shirt_length = EXCLUDED.shirt_length,
			shirt_body = EXCLUDED.shirt_body,
			shirt_loose = EXCLUDED.shirt_loose,
			shirt_shoulder = EXCLUDED.shirt_shoulder,
			shirt_astin = EXCLUDED.shirt_astin,
			shirt_collar = EXCLUDED.shirt_collar,
			shirt_aloose = EXCLUDED.shirt_aloose,
			callar = EXCLUDED.callar,
			cuff = EXCLUDED.cuff,
			pkt = EXCLUDED.pkt,
			loose_shirt = EXCLUDED.loose_shirt,
			dt_tt = EXCLUDED.dt_tt,
			extra_measurements = EXCLUDED.extra_measurements,
			updated_at = NOW()
		RETURNING id
	`

	return r.DB.QueryRow(ctx, query,
		m.PhoneNumber,
		m.PantLength, m.PantKamar, m.PantHips, m.PantWaist, m.PantGhutna, m.PantBottom, m.PantSeat,
		m.SidePCross, m.Plates, m.Belt, m.BackP, m.WP,
		m.ShirtLength, m.ShirtBody, m.ShirtLoose, m.ShirtShoulder, m.ShirtAstin, m.ShirtCollar, m.ShirtAloose,
		m.Collar, m.Cuff, m.Pkt, m.LooseShirt, m.DTTT,
		m.ExtraMeasurements,
	).Scan(&m.ID)
}
