package session

import (
	"fmt"

	"roomrenamer/pkg/config"
	"roomrenamer/pkg/mapstore"
	"roomrenamer/pkg/rooms"
)

// FromConfig builds a session from the user's settings: room map location,
// extra room rules and calendar identity.
func FromConfig(cfg *config.AppConfig) (*Session, error) {
	roomMapPath, err := cfg.RoomMapFilePath()
	if err != nil {
		return nil, err
	}

	rulesPath, err := cfg.RulesFilePath()
	if err != nil {
		return nil, err
	}
	extra, err := rooms.LoadRules(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("could not load room rules: %w", err)
	}

	normalizer, err := rooms.NewNormalizer(extra...)
	if err != nil {
		return nil, err
	}

	return New(Options{
		RoomStore:  mapstore.NewRoomStore(roomMapPath),
		Normalizer: normalizer,
		ProductID:  cfg.Product(),
		UIDDomain:  cfg.Domain(),
	})
}
