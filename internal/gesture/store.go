package gestures

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/ThatOtherAndrew/pincher/internal/config"
	"github.com/ThatOtherAndrew/pincher/internal/models"
	"github.com/ThatOtherAndrew/pincher/internal/stroke"
)

var (
	ErrGestureNotFound = errors.New("gesture not found")
	ErrUnknownFormat   = errors.New("unknown format")
)

func LoadGestures() ([]models.GestureConfig, error) {
	configFile, err := config.GetPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.GestureConfig{}, nil
		}
		return nil, errors.Wrapf(err, "read %s", configFile)
	}

	var gestures []models.GestureConfig
	if err := json.Unmarshal(data, &gestures); err != nil {
		return nil, errors.Wrapf(err, "decode %s", configFile)
	}

	return gestures, nil
}

func writeGestures(gestures []models.GestureConfig) error {
	configFile, err := config.GetPath()
	if err != nil {
		return err
	}

	data, err := json.Marshal(gestures)
	if err != nil {
		return errors.Wrap(err, "encode gestures")
	}

	return errors.Wrapf(os.WriteFile(configFile, data, 0644), "write %s", configFile)
}

// SaveGesture stores templates under command, replacing any gesture already
// registered for it.
func SaveGesture(command string, templates []stroke.Shape) error {
	gestures, err := LoadGestures()
	if err != nil {
		return err
	}

	newGesture := models.GestureConfig{
		Command:   command,
		Templates: templates,
	}

	found := false
	for i, g := range gestures {
		if g.Command == command {
			gestures[i] = newGesture
			found = true
			break
		}
	}
	if !found {
		gestures = append(gestures, newGesture)
	}

	return writeGestures(gestures)
}

func RemoveGesture(command string) error {
	gestures, err := LoadGestures()
	if err != nil {
		return err
	}

	found := false
	for i, g := range gestures {
		if g.Command == command {
			gestures = append(gestures[:i], gestures[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return errors.Wrap(ErrGestureNotFound, command)
	}

	return writeGestures(gestures)
}

// Export writes every registered gesture to w as "json" or "yaml".
func Export(w io.Writer, format string) error {
	gestures, err := LoadGestures()
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "json":
		data, err = json.MarshalIndent(gestures, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(gestures)
	default:
		return errors.Wrap(ErrUnknownFormat, format)
	}
	if err != nil {
		return errors.Wrap(err, "encode gestures")
	}

	_, err = w.Write(data)
	return err
}

// Import reads gestures in the given format from r and saves each of them,
// replacing registered gestures with the same command. It returns the number
// of gestures imported.
func Import(r io.Reader, format string) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, errors.Wrap(err, "read gestures")
	}

	var incoming []models.GestureConfig
	switch format {
	case "json":
		err = json.Unmarshal(data, &incoming)
	case "yaml":
		err = yaml.Unmarshal(data, &incoming)
	default:
		return 0, errors.Wrap(ErrUnknownFormat, format)
	}
	if err != nil {
		return 0, errors.Wrap(err, "decode gestures")
	}

	gestures, err := LoadGestures()
	if err != nil {
		return 0, err
	}
	for _, in := range incoming {
		replaced := false
		for i, g := range gestures {
			if g.Command == in.Command {
				gestures[i] = in
				replaced = true
				break
			}
		}
		if !replaced {
			gestures = append(gestures, in)
		}
	}

	if err := writeGestures(gestures); err != nil {
		return 0, err
	}
	return len(incoming), nil
}
