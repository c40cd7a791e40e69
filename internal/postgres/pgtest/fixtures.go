package pgtest

import "context"

// Ids of the rows inserted by SeedCatalog.
const (
	UserAnna int64 = 1
	UserIvan int64 = 2

	ModelCamry int64 = 1 // active, base 1 000 000, default color Silver
	ModelSupra int64 = 2 // inactive

	ConfCamryComfort int64 = 1 // +50 000
	ConfSupraSport   int64 = 2 // +200 000

	OptionWinterPack int64 = 1 // 10 000
	OptionFloorMats  int64 = 2 // 5 000

	CarCamryAvailable int64 = 1
	CarCamrySold      int64 = 2
	CarSupraAvailable int64 = 3
)

const seedSQL = `
INSERT INTO users (id, email, full_name) VALUES
    (1, 'anna@example.com', 'Anna Petrova'),
    (2, 'ivan@example.com', 'Ivan Sidorov');

INSERT INTO models (id, brand, name, year, body_type, fuel_type, base_price, is_active, default_color) VALUES
    (1, 'Toyota', 'Camry', 2025, 'Sedan', 'Petrol', 1000000, TRUE, 'Silver'),
    (2, 'Toyota', 'Supra', 1998, 'Coupe', 'Petrol', 3000000, FALSE, NULL);

INSERT INTO configurations (id, model_id, name, additional_price) VALUES
    (1, 1, 'Comfort', 50000),
    (2, 2, 'Sport', 200000);

INSERT INTO additional_options (id, name, price) VALUES
    (1, 'Winter pack', 10000),
    (2, 'Floor mats', 5000);

INSERT INTO cars (id, model_id, vin, color, status, mileage) VALUES
    (1, 1, 'JTNB11HK003000001', 'Black', 'Available', 0),
    (2, 1, 'JTNB11HK003000002', 'White', 'Sold', 12),
    (3, 2, 'JT2JA82J0W0000003', 'Red', 'Available', 54000);

SELECT setval('users_id_seq', (SELECT max(id) FROM users));
SELECT setval('models_id_seq', (SELECT max(id) FROM models));
SELECT setval('configurations_id_seq', (SELECT max(id) FROM configurations));
SELECT setval('additional_options_id_seq', (SELECT max(id) FROM additional_options));
SELECT setval('cars_id_seq', (SELECT max(id) FROM cars));
`

// SeedCatalog inserts a small catalog and inventory. Call after Truncate.
func (c *Container) SeedCatalog(ctx context.Context) error {
	_, err := c.DB.ExecContext(ctx, seedSQL)
	return err
}
