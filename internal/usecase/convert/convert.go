// Package convert turns GIB records into SGF text.
package convert

import (
	"fmt"
	"strconv"
	"strings"

	"gib2sgf/internal/domain/game"
	"gib2sgf/internal/domain/sgf"
	"gib2sgf/internal/gib"
)

// Version is embedded in the AP property. Release builds override it with
// -ldflags "-X gib2sgf/internal/usecase/convert.Version=...".
var Version = "0.3.0"

const (
	appName = "gib2sgf"

	rules       = "Japanese" // Tygem plays Japanese rules
	boardSize   = "19"
	gameGo      = "1"
	fileFormat  = "4"
	charset     = "UTF-8"
	appProperty = "AP"
)

// AppID is the AP value written into every converted file.
func AppID() string {
	return appName + ":" + Version
}

// GibToSgf converts the contents of a GIB file to the contents of an SGF
// file. A parse failure is returned as is and no output is produced.
func GibToSgf(text string) (string, error) {
	record, err := gib.Parse(text)
	if err != nil {
		return "", err
	}
	return BuildCollection(record).String(), nil
}

// ConvertOrNil is GibToSgf for callers that only care whether conversion
// worked.
func ConvertOrNil(text string) *string {
	out, err := GibToSgf(text)
	if err != nil {
		return nil
	}
	return &out
}

// BuildCollection lays out a record as a single game tree: the root node with
// the game information followed by one node per move.
func BuildCollection(record *game.Record) *sgf.Collection {
	root := sgf.NewNode()
	root.SetPropertyIfPresent("PB", record.Black.Nick)
	root.SetPropertyIfPresent("BR", record.Black.Rank)
	root.SetPropertyIfPresent("PW", record.White.Nick)
	root.SetPropertyIfPresent("WR", record.White.Rank)
	sgf.SetOptional(root, "KM", record.Komi)
	sgf.SetOptional(root, "DT", record.Date)
	sgf.SetOptional(root, "RE", record.Result)
	root.SetPropertyIfPresent("SO", record.Place)

	root.SetProperty("RU", rules)
	root.SetProperty("SZ", boardSize)
	root.SetProperty("GM", gameGo)
	root.SetProperty("FF", fileFormat)
	root.SetProperty("CA", charset)
	root.SetProperty(appProperty, AppID())

	if record.Handicap != nil {
		root.SetProperty("HA", strconv.Itoa(record.Handicap.Stones()))
		sgf.SetValues(root, "AB", record.Handicap.Points()...)
	}

	tree := sgf.NewGameTree()
	tree.AddNode(root)
	for _, move := range record.Moves {
		tree.AddMove(move)
	}
	return sgf.NewCollection(tree)
}

// RemoveAppVersion strips the first AP[gib2sgf:...] property so that files
// written by different versions can be compared.
func RemoveAppVersion(sgfText string) string {
	marker := fmt.Sprintf("%s[%s:", appProperty, appName)
	start := strings.Index(sgfText, marker)
	if start < 0 {
		return sgfText
	}
	end := strings.Index(sgfText[start:], "]")
	if end < 0 {
		return sgfText
	}
	return sgfText[:start] + sgfText[start+end+1:]
}
