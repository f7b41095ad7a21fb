// Package catalog serves the prebuilt learning path content.
//
// The catalog is loaded once from an embedded JSON asset (or an override file)
// and is read-only afterwards. Every accessor returns copies, so a generated
// path is a snapshot that later catalog changes cannot touch.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"finlit_backend/internal/util"
	"fmt"
	"os"
	"strings"
)

//go:embed data/paths.json
var embeddedPaths []byte

type Chapter struct {
	Chapter int    `json:"chapter"`
	Title   string `json:"title"`
}

type Resource struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// QuizBlock groups the questions attached to one chapter of a step.
type QuizBlock struct {
	Chapter   int        `json:"chapter"`
	Questions []Question `json:"questions"`
}

// Step is the catalog form of a learning path step.
type Step struct {
	Step        int         `json:"step"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Chapters    []Chapter   `json:"chapters"`
	Resources   []Resource  `json:"resources"`
	Quizzes     []QuizBlock `json:"quizzes"`
}

// PathStep is the generated form of a step: all quiz blocks are merged into
// a single ordered question list.
type PathStep struct {
	Step        int        `json:"step"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Chapters    []Chapter  `json:"chapters"`
	Resources   []Resource `json:"resources"`
	Quiz        []Question `json:"quiz"`
}

type Topic struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

type file struct {
	Topics []Topic `json:"topics"`
}

type Catalog struct {
	order  []string
	topics map[string][]Step
}

// Load reads the catalog from path, or from the embedded asset when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(embeddedPaths)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(embeddedPaths)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Parse builds a catalog from JSON. A topic listed twice keeps its first entry.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{topics: make(map[string][]Step, len(f.Topics))}
	for i, t := range f.Topics {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog topic #%d has no name", i)
		}
		if len(t.Steps) == 0 {
			return nil, fmt.Errorf("catalog topic %q has no steps", name)
		}
		if _, dup := c.topics[name]; dup {
			continue
		}
		c.order = append(c.order, name)
		c.topics[name] = copySteps(t.Steps)
	}
	if len(c.order) == 0 {
		return nil, errors.New("catalog has no topics")
	}
	return c, nil
}

// Topics returns the topic names in catalog order.
func (c *Catalog) Topics() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Has(topic string) bool {
	_, ok := c.topics[topic]
	return ok
}

// Lookup returns a copy of the catalog steps of topic.
func (c *Catalog) Lookup(topic string) ([]Step, error) {
	steps, ok := c.topics[topic]
	if !ok {
		return nil, fmt.Errorf("%w. Choose one of: %s", util.ErrUnknownTopic, strings.Join(c.order, ", "))
	}
	return copySteps(steps), nil
}

// Generate returns the flattened path content of topic.
func (c *Catalog) Generate(topic string) ([]PathStep, error) {
	steps, err := c.Lookup(topic)
	if err != nil {
		return nil, err
	}
	return Flatten(steps), nil
}

// Flatten converts catalog steps into path steps, concatenating the questions
// of every quiz block in order.
func Flatten(steps []Step) []PathStep {
	out := make([]PathStep, 0, len(steps))
	for _, s := range steps {
		quiz := []Question{}
		for _, block := range s.Quizzes {
			quiz = append(quiz, copyQuestions(block.Questions)...)
		}
		out = append(out, PathStep{
			Step:        s.Step,
			Title:       s.Title,
			Description: s.Description,
			Chapters:    append([]Chapter{}, s.Chapters...),
			Resources:   append([]Resource{}, s.Resources...),
			Quiz:        quiz,
		})
	}
	return out
}

func copySteps(steps []Step) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = s
		out[i].Chapters = append([]Chapter{}, s.Chapters...)
		out[i].Resources = append([]Resource{}, s.Resources...)
		out[i].Quizzes = make([]QuizBlock, len(s.Quizzes))
		for j, q := range s.Quizzes {
			out[i].Quizzes[j] = QuizBlock{Chapter: q.Chapter, Questions: copyQuestions(q.Questions)}
		}
	}
	return out
}

func copyQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q
		out[i].Options = append([]string{}, q.Options...)
	}
	return out
}
