package tagstore

import (
	"fmt"

	"github.com/bogem/id3v2"

	"github.com/mizuhane/tagsmith/internal/model"
)

// id3CreditFrames maps credit categories to ID3v2 frame IDs. ID3 has no
// dedicated arranger frame; TPE4 (interpreted/modified by) is the
// conventional slot.
var id3CreditFrames = map[model.FieldCategory]string{
	model.FieldComposer: "TCOM",
	model.FieldLyricist: "TEXT",
	model.FieldArranger: "TPE4",
}

// writeID3Credit replaces the frame for the given category with value.
func writeID3Credit(path string, cat model.FieldCategory, value string) error {
	frameID, ok := id3CreditFrames[cat]
	if !ok {
		return fmt.Errorf("no ID3 frame for category %s", cat)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open id3 tag for %s: %w", path, err)
	}
	defer tag.Close()

	tag.DeleteFrames(frameID)
	tag.AddTextFrame(frameID, id3v2.EncodingUTF8, value)

	return tag.Save()
}

// writeID3Artwork embeds the asset as the front cover APIC frame,
// replacing any existing attached pictures.
func writeID3Artwork(path string, asset *model.ArtworkAsset) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open id3 tag for %s: %w", path, err)
	}
	defer tag.Close()

	tag.DeleteFrames(tag.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    asset.MIMEType(),
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     asset.Bytes,
	}
	tag.AddAttachedPicture(pic)

	return tag.Save()
}
