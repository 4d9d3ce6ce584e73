// Package seeders holds the seed routines run by `elgarage seed`: the
// app_settings singleton row and a demo admin account. Each file registers
// its routines from init().
package seeders

import (
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// SeederFunc inserts its rows, returning the first failure.
type SeederFunc func(db *gorm.DB) error

var (
	mu     sync.Mutex
	order  []string
	byName = map[string]SeederFunc{}
)

// Register adds fn under name; registration order is execution order.
// Registering the same name twice replaces the earlier routine.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := byName[name]; !exists {
		order = append(order, name)
	}
	byName[name] = fn
}

// RunAll executes every registered seeder and stops at the first failure.
func RunAll(db *gorm.DB) error {
	mu.Lock()
	names := append([]string(nil), order...)
	funcs := make(map[string]SeederFunc, len(byName))
	for k, v := range byName {
		funcs[k] = v
	}
	mu.Unlock()

	for _, name := range names {
		fmt.Printf("  Seeding: %s\n", name)
		if err := funcs[name](db); err != nil {
			return fmt.Errorf("seeder %q: %w", name, err)
		}
	}
	if len(names) == 0 {
		fmt.Println("  No seeders registered.")
	}
	return nil
}
