package tagstore

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"

	"github.com/mizuhane/tagsmith/internal/model"
)

// rawCreditKeys maps each credit category to the native tag keys it may
// be stored under. Vorbis comment keys arrive lowercased; ID3 keys are
// frame IDs.
var rawCreditKeys = map[model.FieldCategory][]string{
	model.FieldComposer: {"composer", "TCOM"},
	model.FieldLyricist: {"lyricist", "TEXT", "TOLY"},
	model.FieldArranger: {"arranger", "TPE4"},
}

// ReadInfo reads a track's title, number, and enrichable field snapshot.
// The container format is sniffed from the file contents, not the
// extension.
func (s *FileStore) ReadInfo(path string) (TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return TrackInfo{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return TrackInfo{}, fmt.Errorf("read tags from %s: %w", path, err)
	}

	info := TrackInfo{
		Title:  m.Title(),
		Fields: model.TagFields{},
	}
	info.TrackNumber, _ = m.Track()

	if pic := m.Picture(); pic != nil && len(pic.Data) > 0 {
		mime := pic.MIMEType
		if mime == "" {
			mime = "image/jpeg"
		}
		info.Fields.Set(model.FieldArtwork, mime)
	}

	if composer := m.Composer(); composer != "" {
		info.Fields.Set(model.FieldComposer, composer)
	}

	raw := m.Raw()
	for _, cat := range model.CreditCategories {
		if info.Fields.Has(cat) {
			continue
		}
		for _, key := range rawCreditKeys[cat] {
			if value, ok := raw[key].(string); ok && value != "" {
				info.Fields.Set(cat, value)
				break
			}
		}
	}

	return info, nil
}
