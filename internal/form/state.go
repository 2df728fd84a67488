package form

import (
	"strings"

	"picconv/internal/convert"
	"picconv/internal/model"
	"picconv/internal/naming"
)

// State holds the three fields the user edits before converting.
type State struct {
	Source      string
	Destination string
	Format      model.Format
}

// New returns a State with the default format preselected.
func New() *State {
	return &State{Format: model.DefaultFormat}
}

// SelectSource records a picked source and resets the destination to the suggested name.
// An empty path means the picker was cancelled and leaves the state unchanged.
func (s *State) SelectSource(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	s.Source = path
	s.Destination = naming.Suggest(path, s.Format)
}

// ChangeFormat switches the target format and, once both paths are set, the destination extension.
func (s *State) ChangeFormat(f model.Format) {
	s.Format = f
	if s.Source != "" && s.Destination != "" {
		s.Destination = naming.ReplaceExt(s.Destination, f)
	}
}

// ChooseDestination records a destination typed or picked by the user.
func (s *State) ChooseDestination(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	s.Destination = naming.NormalizeSaveAs(path, s.Format)
}

// SaveAsDefaults returns the directory and filename to prefill the destination prompt with.
func (s *State) SaveAsDefaults(home string) (string, string) {
	return naming.SaveAsDefaults(s.Source, s.Format, home)
}

// Request snapshots the state, reporting the first missing field.
func (s *State) Request() (model.Request, error) {
	req := model.Request{
		Source:      s.Source,
		Destination: s.Destination,
		Format:      s.Format,
	}
	if err := convert.Validate(req); err != nil {
		return model.Request{}, err
	}
	return req, nil
}
