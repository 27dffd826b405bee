// Package prompts holds the embedded prompt templates sent by the analysis
// and generation clients. Each template lives in a JSON file mapping a prompt
// key to its text, with {{.Name}} placeholders filled in at call time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	parsedMu sync.Mutex
	parsed   = make(map[string]map[string]string)
)

// Get returns the prompt stored under key in the named embedded file.
func Get(filename, key string) (string, error) {
	file, err := load(filename)
	if err != nil {
		return "", err
	}

	prompt, ok := file[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// Render looks up a prompt and substitutes its {{.Name}} placeholders from
// data. Placeholders without a matching entry are left intact. Prompt files
// are fixed at compile time, so a missing file or key is a programming error
// and panics.
func Render(filename, key string, data map[string]string) string {
	text, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("load prompt: %v", err))
	}
	for name, value := range data {
		text = strings.ReplaceAll(text, "{{."+name+"}}", value)
	}
	return text
}

func load(filename string) (map[string]string, error) {
	parsedMu.Lock()
	defer parsedMu.Unlock()

	if file, ok := parsed[filename]; ok {
		return file, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read prompt file %s: %w", filename, err)
	}

	var file map[string]string
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse prompt file %s: %w", filename, err)
	}

	parsed[filename] = file
	return file, nil
}
