package load

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/syssam/faktorgen"
	"github.com/syssam/faktorgen/model"
)

// ReadFile reads the snapshot stored at path.
func ReadFile(path string) (*Snapshot, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := UnmarshalSnapshot(buf)
	if err != nil {
		return nil, faktorgen.NewModelError(path, "", "decode snapshot", err)
	}
	return s, nil
}

// WriteFile stores s at path, replacing the file atomically.
func WriteFile(path string, s *Snapshot) error {
	buf, err := MarshalSnapshot(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads the snapshot at path, builds its project and, recursively, the
// projects it references. A snapshot referenced several times, including by
// itself, is loaded once.
func Load(path string) (*model.Project, error) {
	l := &loader{projects: make(map[string]*model.Project)}
	return l.load(path)
}

type loader struct {
	projects map[string]*model.Project
}

func (l *loader) load(path string) (*model.Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if p, ok := l.projects[abs]; ok {
		return p, nil
	}
	s, err := ReadFile(abs)
	if err != nil {
		return nil, err
	}
	p, err := s.Build()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	l.projects[abs] = p
	for _, ref := range s.References {
		if !filepath.IsAbs(ref) {
			ref = filepath.Join(filepath.Dir(abs), ref)
		}
		rp, err := l.load(ref)
		if err != nil {
			return nil, err
		}
		p.References = append(p.References, rp)
	}
	return p, nil
}
