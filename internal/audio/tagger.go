package audio

import (
	"context"
	"strconv"

	"github.com/bogem/id3v2"
	"golang.org/x/sync/errgroup"
)

// TagEditAction defines how to handle individual ID3 tags.
//
// Each tag field can be configured independently to determine whether
// it should be modified, cleared, or left unchanged.
type TagEditAction int

const (
	// TagEmpty clears the tag value.
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value from the match.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field.
//
// This allows fine-grained control over which tags are modified when
// writing playlist order into the files.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags:  true,
//	    TrackNumber: TagModify,      // Write playlist position
//	    TrackTitle:  TagModify,      // Write playlist entry as title
//	    Album:       TagModify,      // Write the show name
//	    Comments:    TagDoNotModify, // Keep whatever is there
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no tags are modified.
	ModifyTags bool

	// TrackNumber controls the TRCK (Track number) frame, written
	// from the playlist position.
	TrackNumber TagEditAction

	// TrackTitle controls the TIT2 (Title) frame, written from the
	// playlist entry text.
	TrackTitle TagEditAction

	// Album controls the TALB (Album title) frame, written from the
	// configured show name.
	Album TagEditAction

	// Comments controls the COMM (Comments) frame. There is no
	// comment source, so TagModify behaves like TagDoNotModify.
	Comments TagEditAction
}

// DefaultTagConfig returns the default tag configuration.
//
// Only the track number is written by default; titles, album and
// comments are left as they are on disk.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags:  true,
		TrackNumber: TagModify,
		TrackTitle:  TagDoNotModify,
		Album:       TagDoNotModify,
		Comments:    TagDoNotModify,
	}
}

// TagItem carries the values to write into one file's tags.
type TagItem struct {
	// Path is the full path of the MP3 file.
	Path string

	// Order is the playlist position, written to TRCK.
	Order int

	// Title is the playlist entry text, written to TIT2.
	Title string

	// Album is the show name, written to TALB.
	Album string
}

// Tagger writes ID3 tags to MP3 files.
//
// Tagger uses the id3v2 library to record playlist order in the files
// themselves, so players that sort by track number follow the
// playlist even without the filename prefix.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	err := tagger.SaveTags(TagItem{Path: path, Order: 7, Title: name, Album: show})
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SaveTags writes the configured ID3 frames to the item's MP3 file.
//
// The file must exist; its current tags are parsed, updated according
// to TagConfig and saved back.
func (t *Tagger) SaveTags(item TagItem) error {
	tag, err := id3v2.Open(item.Path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	if t.config.ModifyTags {
		t.updateFrames(tag, item)
	}

	return tag.Save()
}

// TagAll tags every item, spreading the work over workers goroutines.
//
// fn, when non-nil, is called once per item with the tagging error,
// nil on success. A failed file does not stop the others; only
// context cancellation aborts the pass.
func (t *Tagger) TagAll(ctx context.Context, items []TagItem, workers int, fn func(TagItem, error)) error {
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, item := range items {
		item := item // capture
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := t.SaveTags(item)
			if fn != nil {
				fn(item, err)
			}
			return nil // Continue with other files
		})
	}

	return g.Wait()
}

// updateFrames updates text-based ID3 frames based on configuration.
func (t *Tagger) updateFrames(tag *id3v2.Tag, item TagItem) {
	// Track Number (TRCK)
	switch t.config.TrackNumber {
	case TagEmpty:
		tag.DeleteFrames("TRCK")
	case TagModify:
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, strconv.Itoa(item.Order))
	}

	// Track Title (TIT2)
	switch t.config.TrackTitle {
	case TagEmpty:
		tag.SetTitle("")
	case TagModify:
		tag.SetTitle(item.Title)
	}

	// Album (TALB)
	switch t.config.Album {
	case TagEmpty:
		tag.SetAlbum("")
	case TagModify:
		tag.SetAlbum(item.Album)
	}

	// Comments (COMM)
	if t.config.Comments == TagEmpty {
		tag.DeleteFrames(tag.CommonID("Comments"))
	}
}
