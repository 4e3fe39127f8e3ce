package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/lox/pokercoach/internal/lessons"
)

// LessonsCmd manages stored lessons.
type LessonsCmd struct {
	List    LessonsListCmd    `cmd:"" default:"1" help:"List stored lessons"`
	Enable  LessonsEnableCmd  `cmd:"" help:"Enable a lesson"`
	Disable LessonsDisableCmd `cmd:"" help:"Disable a lesson"`
	Delete  LessonsDeleteCmd  `cmd:"" help:"Delete a lesson"`
}

type LessonsListCmd struct{}

func (c *LessonsListCmd) Run(cli *CLI) error {
	cfg, _, err := setup(cli)
	if err != nil {
		return err
	}

	lessonStore, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	stored, err := lessonStore.List(context.Background())
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		fmt.Println("No lessons stored. Try: pokercoach learn <video-url>")
		return nil
	}

	for _, l := range stored {
		status := "on "
		if !l.Active {
			status = "off"
		}
		fmt.Printf("[%s] %s  %s  %s\n", l.ID, status, l.CreatedAt.Format("2006-01-02"), describeLesson(l))
	}
	return nil
}

type LessonsEnableCmd struct {
	ID string `arg:"" help:"Lesson ID"`
}

func (c *LessonsEnableCmd) Run(cli *CLI) error {
	return setLessonActive(cli, c.ID, true)
}

type LessonsDisableCmd struct {
	ID string `arg:"" help:"Lesson ID"`
}

func (c *LessonsDisableCmd) Run(cli *CLI) error {
	return setLessonActive(cli, c.ID, false)
}

type LessonsDeleteCmd struct {
	ID string `arg:"" help:"Lesson ID"`
}

func (c *LessonsDeleteCmd) Run(cli *CLI) error {
	cfg, _, err := setup(cli)
	if err != nil {
		return err
	}

	lessonStore, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := lessonStore.Delete(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted lesson %s\n", c.ID)
	return nil
}

func setLessonActive(cli *CLI, id string, active bool) error {
	cfg, _, err := setup(cli)
	if err != nil {
		return err
	}

	lessonStore, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := lessonStore.SetActive(context.Background(), id, active); err != nil {
		return err
	}
	state := "enabled"
	if !active {
		state = "disabled"
	}
	fmt.Printf("Lesson %s %s\n", id, state)
	return nil
}

// describeLesson renders the scope and deltas of one lesson compactly.
func describeLesson(l lessons.Lesson) string {
	var scope []string
	if l.Position != "" {
		scope = append(scope, string(l.Position))
	}
	if l.HandCategory != "" {
		scope = append(scope, string(l.HandCategory))
	}
	if l.Situation != "" {
		scope = append(scope, string(l.Situation))
	}
	if len(scope) == 0 {
		scope = append(scope, "all spots")
	}

	var deltas []string
	for _, d := range []struct {
		name  string
		value int
	}{{"fold", l.FoldDelta}, {"call", l.CallDelta}, {"raise", l.RaiseDelta}} {
		if d.value != 0 {
			deltas = append(deltas, fmt.Sprintf("%s%+d", d.name, d.value))
		}
	}

	desc := strings.Join(scope, "/") + ": " + strings.Join(deltas, " ")
	if l.Source != "" {
		desc += "  (" + l.Source + ")"
	}
	return desc
}
