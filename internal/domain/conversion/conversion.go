package conversion

import "time"

// Conversion is an archived run of the converter.
type Conversion struct {
	ID        string    `json:"id" bson:"_id"`
	InputHash string    `json:"input_hash" bson:"input_hash"`
	FileName  string    `json:"file_name,omitempty" bson:"file_name,omitempty"`
	Sgf       string    `json:"sgf" bson:"sgf"`
	Black     string    `json:"black,omitempty" bson:"black,omitempty"`
	White     string    `json:"white,omitempty" bson:"white,omitempty"`
	Moves     int       `json:"moves" bson:"moves"`
	Warnings  []string  `json:"warnings,omitempty" bson:"warnings,omitempty"`
	ExportKey string    `json:"export_key,omitempty" bson:"export_key,omitempty"`
	Cached    bool      `json:"cached" bson:"cached"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CacheEntry is what the cache keeps per input: the rendered SGF and the
// summary of the parsed record.
type CacheEntry struct {
	Sgf      string   `json:"sgf"`
	Black    string   `json:"black,omitempty"`
	White    string   `json:"white,omitempty"`
	Moves    int      `json:"moves"`
	Warnings []string `json:"warnings,omitempty"`
}

// CacheEntry returns the cached part of c.
func (c Conversion) CacheEntry() CacheEntry {
	return CacheEntry{
		Sgf:      c.Sgf,
		Black:    c.Black,
		White:    c.White,
		Moves:    c.Moves,
		Warnings: c.Warnings,
	}
}

// Apply copies a cached entry into c.
func (c *Conversion) Apply(e CacheEntry) {
	c.Sgf = e.Sgf
	c.Black = e.Black
	c.White = e.White
	c.Moves = e.Moves
	c.Warnings = e.Warnings
}

type ConvertRequest struct {
	FileName string `json:"file_name"`
	Gib      string `json:"gib"`
	Export   bool   `json:"export"`
}

type ConvertResponse struct {
	ID        string   `json:"id"`
	Sgf       string   `json:"sgf"`
	Warnings  []string `json:"warnings,omitempty"`
	Cached    bool     `json:"cached"`
	ExportKey string   `json:"export_key,omitempty"`
}

func (c Conversion) Response() ConvertResponse {
	return ConvertResponse{
		ID:        c.ID,
		Sgf:       c.Sgf,
		Warnings:  c.Warnings,
		Cached:    c.Cached,
		ExportKey: c.ExportKey,
	}
}
