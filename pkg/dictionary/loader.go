package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Load reads a dictionary file, picking the format from the extension:
// .bin is msgpack, .tsv is tab-separated text.
func Load(path string) (*Dictionary, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatBinary:
		return LoadBinary(path)
	case FormatText:
		return LoadText(path)
	}
	return nil, fmt.Errorf("dictionary: unsupported format for %s", path)
}

// LoadBinary reads a msgpack-encoded dictionary.
func LoadBinary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: reading %s: %w", path, err)
	}
	var dict Dictionary
	if err := msgpack.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("dictionary: decoding %s: %w", path, err)
	}
	if err := dict.Validate(); err != nil {
		return nil, fmt.Errorf("dictionary: %s: %w", path, err)
	}
	log.Debugf("Loaded binary dictionary %s: shortform %s, %d longforms",
		path, dict.Shortform, len(dict.Entries))
	return &dict, nil
}

// SaveBinary writes a dictionary as msgpack.
func SaveBinary(dict *Dictionary, path string) error {
	if err := dict.Validate(); err != nil {
		return err
	}
	data, err := msgpack.Marshal(dict)
	if err != nil {
		return fmt.Errorf("dictionary: encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dictionary: writing %s: %w", path, err)
	}
	return nil
}

// LoadText reads a TSV dictionary. The first non-comment line holds the
// shortform; every following line is "longform<TAB>grounding". Blank
// lines and lines starting with '#' are skipped.
func LoadText(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: opening %s: %w", path, err)
	}
	defer file.Close()

	dict := &Dictionary{Entries: make(GroundingMap)}
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if dict.Shortform == "" {
			dict.Shortform = line
			continue
		}
		longform, grounding, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("dictionary: %s:%d: expected longform<TAB>grounding", path, lineNo)
		}
		longform = strings.TrimSpace(longform)
		grounding = strings.TrimSpace(grounding)
		if prev, dup := dict.Entries[longform]; dup {
			log.Warnf("Duplicate longform %q in %s (keeping %s, dropping %s)",
				longform, path, prev, grounding)
			continue
		}
		dict.Entries[longform] = grounding
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: reading %s: %w", path, err)
	}
	if err := dict.Validate(); err != nil {
		return nil, fmt.Errorf("dictionary: %s: %w", path, err)
	}
	log.Debugf("Loaded text dictionary %s: shortform %s, %d longforms",
		path, dict.Shortform, len(dict.Entries))
	return dict, nil
}

// LoadAll loads every dictionary file in a directory, keyed by shortform.
func LoadAll(dirPath string) (map[string]*Dictionary, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("dictionary: scanning %s: %w", dirPath, err)
	}
	dicts := make(map[string]*Dictionary)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".bin" && ext != ".tsv" {
			continue
		}
		path := filepath.Join(dirPath, entry.Name())
		dict, err := Load(path)
		if err != nil {
			log.Warnf("Skipping dictionary %s: %v", path, err)
			continue
		}
		if _, dup := dicts[dict.Shortform]; dup {
			log.Warnf("Duplicate dictionary for shortform %s, keeping the first", dict.Shortform)
			continue
		}
		dicts[dict.Shortform] = dict
	}
	if len(dicts) == 0 {
		return nil, fmt.Errorf("dictionary: no dictionary files found in %s", dirPath)
	}
	return dicts, nil
}
