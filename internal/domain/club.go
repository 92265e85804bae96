package domain

// Club is a student club. The API exposes no write surface for clubs;
// rows are seeded via migrations.
type Club struct {
	ID          int64
	Name        string
	Description *string
}
