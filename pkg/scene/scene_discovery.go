package scene

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name used to select the scene
	DisplayName string // Human readable name
	Description string // One line summary
	Textured    bool   // Whether the scene reads Options.TexturePath
}

type sceneEntry struct {
	info  SceneInfo
	build func(opts Options) *Scene
}

var builtInScenes = map[string]sceneEntry{}

func register(id, description string, textured bool, build func(opts Options) *Scene) {
	builtInScenes[id] = sceneEntry{
		info: SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: description,
			Textured:    textured,
		},
		build: build,
	}
}

func init() {
	register("default", "Diffuse, metal and hollow glass spheres on a large ground sphere", false,
		func(Options) *Scene { return NewDefaultScene() })
	register("checker", "Two spheres sharing a solid checker texture", false,
		func(Options) *Scene { return NewCheckerScene() })
	register("uvchecker", "Two spheres with a UV mapped checkerboard and gradient", false,
		func(Options) *Scene { return NewUVCheckerScene() })
	register("perlin", "Perlin noise ground and a turbulent marble sphere", false, NewPerlinScene)
	register("earth", "Image textured globe (UV debug pattern without a texture file)", true, NewEarthScene)
	register("bouncing", "Field of small spheres with motion blur", false, NewBouncingScene)
}

// ListScenes returns all built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, entry := range builtInScenes {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// NewScene builds the scene registered under id
func NewScene(id string, opts Options) (*Scene, error) {
	entry, ok := builtInScenes[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return entry.build(opts), nil
}

// FormatSceneList renders scene metadata as a text table
func FormatSceneList(scenes []SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Texture", "Description"})
	for _, info := range scenes {
		textured := ""
		if info.Textured {
			textured = "yes"
		}
		table.Append([]string{info.ID, info.DisplayName, textured, info.Description})
	}
	table.Render()
	return buf.String()
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
