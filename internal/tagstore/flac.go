package tagstore

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"

	"github.com/mizuhane/tagsmith/internal/model"
)

// flacCreditFields maps credit categories to Vorbis comment field names.
var flacCreditFields = map[model.FieldCategory]string{
	model.FieldComposer: "COMPOSER",
	model.FieldLyricist: "LYRICIST",
	model.FieldArranger: "ARRANGER",
}

// writeFLACCredit replaces the Vorbis comment field for the given
// category with value, preserving every other comment.
func writeFLACCredit(path string, cat model.FieldCategory, value string) error {
	field, ok := flacCreditFields[cat]
	if !ok {
		return fmt.Errorf("no vorbis field for category %s", cat)
	}

	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse flac %s: %w", path, err)
	}

	cmts, idx := findVorbisComment(f)
	if cmts == nil {
		cmts = flacvorbis.New()
	}

	// Drop any existing values for the field before re-adding.
	kept := cmts.Comments[:0]
	prefix := field + "="
	for _, c := range cmts.Comments {
		if !strings.HasPrefix(strings.ToUpper(c), prefix) {
			kept = append(kept, c)
		}
	}
	cmts.Comments = kept

	if err := cmts.Add(field, value); err != nil {
		return fmt.Errorf("add %s comment: %w", field, err)
	}

	block := cmts.Marshal()
	if idx >= 0 {
		f.Meta[idx] = &block
	} else {
		f.Meta = append(f.Meta, &block)
	}

	return f.Save(path)
}

// writeFLACArtwork embeds the asset as the front cover PICTURE block,
// replacing any existing picture blocks.
func writeFLACArtwork(path string, asset *model.ArtworkAsset) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse flac %s: %w", path, err)
	}

	kept := f.Meta[:0]
	for _, meta := range f.Meta {
		if meta.Type != flac.Picture {
			kept = append(kept, meta)
		}
	}
	f.Meta = kept

	picture, err := flacpicture.NewFromImageData(
		flacpicture.PictureTypeFrontCover,
		"Cover",
		asset.Bytes,
		asset.MIMEType(),
	)
	if err != nil {
		return fmt.Errorf("build picture block: %w", err)
	}

	block := picture.Marshal()
	f.Meta = append(f.Meta, &block)

	return f.Save(path)
}

// findVorbisComment returns the file's Vorbis comment block and its index
// in the metadata sequence, or (nil, -1) when the file has none.
func findVorbisComment(f *flac.File) (*flacvorbis.MetaDataBlockVorbisComment, int) {
	for i, meta := range f.Meta {
		if meta.Type == flac.VorbisComment {
			cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
			if err == nil {
				return cmts, i
			}
		}
	}
	return nil, -1
}
