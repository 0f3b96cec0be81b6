// Package plans loads study schedule templates from YAML files so a
// deployment can ship seed schedules alongside the binary.
package plans

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tanav-bollam/UHACCS-Hackathon/internal/models"
)

// templateFile is the YAML shape of a schedule template on disk.
type templateFile struct {
	ID    string `yaml:"id"`
	Tasks []struct {
		ID              string `yaml:"id"`
		Name            string `yaml:"name"`
		DurationMinutes int    `yaml:"duration_minutes"`
		Completed       bool   `yaml:"completed"`
	} `yaml:"tasks"`
	Intervals  []int  `yaml:"intervals"`
	Recurrence string `yaml:"recurrence"`
}

// ScanTemplates walks each directory in dirs looking for *.yaml / *.yml
// schedule templates. Files that cannot be read or parsed, or that fail
// validation, are skipped.
func ScanTemplates(dirs []string) ([]*models.StudySchedule, error) {
	var schedules []*models.StudySchedule

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Skip directories that don't exist
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read template dir %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if ext != ".yaml" && ext != ".yml" {
				continue
			}

			data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				continue
			}

			schedule, err := parseTemplate(data)
			if err != nil {
				continue
			}

			if schedule.ID == "" {
				// Use file name as fallback
				schedule.ID = strings.TrimSuffix(entry.Name(), ext)
			}

			schedules = append(schedules, schedule)
		}
	}

	return schedules, nil
}

// parseTemplate decodes one template file into a schedule, rejecting
// templates without any valid task.
func parseTemplate(data []byte) (*models.StudySchedule, error) {
	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	schedule := &models.StudySchedule{
		ID:         tf.ID,
		Intervals:  tf.Intervals,
		Recurrence: tf.Recurrence,
	}
	for _, task := range tf.Tasks {
		t := models.Task{
			ID:              task.ID,
			Name:            task.Name,
			DurationMinutes: task.DurationMinutes,
			Completed:       task.Completed,
		}
		if !t.Validate() {
			continue
		}
		schedule.Tasks = append(schedule.Tasks, t)
	}

	if len(schedule.Tasks) == 0 {
		return nil, fmt.Errorf("template has no valid tasks")
	}
	return schedule, nil
}
