package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"encoding/json"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/planner/pkg/task"
)

// Persistence defines the local persistence contract for tasks and
// categories. The calendar engine never touches it directly; callers hand
// the engine read-only snapshots obtained here.
type Persistence interface {
	Tasks(ctx context.Context) []*task.Task
	Categories(ctx context.Context) []task.Category
	Store(t *task.Task) error
	Delete(t *task.Task) error
	StoreCategory(c task.Category) error
	DeleteCategory(name string) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

const (
	taskPrefix         = "tasks"
	categoriesIndex    = ".categories.json"
	collectionsDirPerm = 0o755
)

func (p *persistence) read(key string) (*task.Task, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	t := &task.Task{}
	if err := json.Unmarshal(val, t); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	t.ID = pk.FileName
	if t.Status == "" {
		t.Status = task.StatusTodo
	}
	return t, nil
}

func (p *persistence) Tasks(ctx context.Context) []*task.Task {
	all := make([]*task.Task, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); len(pk.Path) == 0 || pk.Path[0] != taskPrefix {
			continue
		}
		t, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, t)
	}
	sortTasks(all)
	return all
}

func (p *persistence) Store(t *task.Task) error {
	if t == nil {
		return errors.New("store: nil task")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("store: task title required")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = task.StatusTodo
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(t), data)
}

func (p *persistence) Delete(t *task.Task) error {
	if t == nil || t.ID == "" {
		return errors.New("store: task id required")
	}
	return p.d.Erase(toKey(t))
}

func (p *persistence) Categories(ctx context.Context) []task.Category {
	index, err := p.loadCategoriesIndex()
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: load categories index: %v\n", err)
		return nil
	}
	list := make([]task.Category, 0, len(index))
	for _, c := range index {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

func (p *persistence) StoreCategory(c task.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return errors.New("store: category name required")
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	index, err := p.loadCategoriesIndex()
	if err != nil {
		return fmt.Errorf("store: load categories index: %w", err)
	}
	if existing, ok := index[c.Name]; ok && c.Color == "" {
		c.Color = existing.Color
	}
	index[c.Name] = c
	if err := p.saveCategoriesIndex(index); err != nil {
		return fmt.Errorf("store: save categories index: %w", err)
	}
	return nil
}

func (p *persistence) DeleteCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("store: category name required")
	}
	index, err := p.loadCategoriesIndex()
	if err != nil {
		return fmt.Errorf("store: load categories index: %w", err)
	}
	delete(index, name)
	if err := p.saveCategoriesIndex(index); err != nil {
		return fmt.Errorf("store: save categories index: %w", err)
	}
	return nil
}

func (p *persistence) categoriesIndexPath() string {
	return filepath.Join(p.basePath, categoriesIndex)
}

func (p *persistence) loadCategoriesIndex() (map[string]task.Category, error) {
	if p.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, collectionsDirPerm); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.categoriesIndexPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]task.Category), nil
		}
		return nil, err
	}
	list, err := unmarshalCategories(data)
	if err != nil {
		return nil, err
	}
	index := make(map[string]task.Category, len(list))
	for _, c := range list {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		c.Name = name
		index[name] = c
	}
	return index, nil
}

func (p *persistence) saveCategoriesIndex(index map[string]task.Category) error {
	if p.basePath == "" {
		return errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, collectionsDirPerm); err != nil {
		return err
	}
	list := make([]task.Category, 0, len(index))
	for _, c := range index {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	path := p.categoriesIndexPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// unmarshalCategories decodes the index and upgrades the legacy format,
// which was a bare array of category names.
func unmarshalCategories(data []byte) ([]task.Category, error) {
	if len(data) == 0 {
		return []task.Category{}, nil
	}
	var list []task.Category
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var legacy []string
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, err
	}
	list = make([]task.Category, 0, len(legacy))
	for _, name := range legacy {
		list = append(list, task.Category{Name: name})
	}
	return list, nil
}

func sortTasks(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		left := tasks[i]
		right := tasks[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Created.Time
		rt := right.Created.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.Before(rt)
		}
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:1],
		FileName: strings.Join(parts[1:], "-"),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `tasks-<id>`.
func toKey(t *task.Task) string {
	return fmt.Sprintf("%s-%s", taskPrefix, t.ID)
}
