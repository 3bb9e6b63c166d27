package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RosterFile описывает YAML-файл со списком игроков.
type RosterFile struct {
	Players []RosterEntry `yaml:"players"`
}

// RosterEntry содержит данные одного игрока из файла.
type RosterEntry struct {
	Name  string `yaml:"name"`
	Skill int    `yaml:"skill"`
}

// ReadRosterFile читает состав из YAML-файла. Проверка значений выполняется сервисом.
func ReadRosterFile(path string) (RosterFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RosterFile{}, fmt.Errorf("roster file %s not found", path)
		}
		return RosterFile{}, fmt.Errorf("read roster file: %w", err)
	}
	var roster RosterFile
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return RosterFile{}, fmt.Errorf("decode roster yaml: %w", err)
	}
	return roster, nil
}
