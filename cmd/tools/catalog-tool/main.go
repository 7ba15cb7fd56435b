// catalog-tool maintains activity seed catalog files: add a new activity,
// remove one, or validate a file before deploying it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"school-activities/pkg/catalog"
)

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	removeCmd := flag.NewFlagSet("remove", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Add command flags
	addPath := addCmd.String("path", "configs/activities.json", "Path to catalog file")
	name := addCmd.String("name", "", "Activity name (e.g., Robotics Club)")
	description := addCmd.String("description", "", "Description")
	schedule := addCmd.String("schedule", "", "Schedule (e.g., Mondays, 3:30 PM - 5:00 PM)")
	maxParticipants := addCmd.Int("max", 0, "Maximum participants")

	// Remove command flags
	removePath := removeCmd.String("path", "configs/activities.json", "Path to catalog file")
	removeName := removeCmd.String("name", "", "Activity name to remove")

	// Validate command flags
	validatePath := validateCmd.String("path", "configs/activities.json", "Path to catalog file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *name == "" || *description == "" || *schedule == "" || *maxParticipants < 1 {
			fmt.Println("Error: name, description, schedule, and a positive max are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		if err := addActivity(*addPath, *name, *description, *schedule, *maxParticipants); err != nil {
			fatal(err)
		}
		fmt.Printf("Added %q to %s\n", *name, *addPath)

	case "remove":
		removeCmd.Parse(os.Args[2:])
		if *removeName == "" {
			fmt.Println("Error: name is required for remove.")
			removeCmd.Usage()
			os.Exit(1)
		}
		if err := removeActivity(*removePath, *removeName); err != nil {
			fatal(err)
		}
		fmt.Printf("Removed %q from %s\n", *removeName, *removePath)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		c, err := catalog.Load(*validatePath)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("%s is valid: %d activities\n", *validatePath, len(c))

	default:
		help()
		os.Exit(1)
	}
}

func addActivity(path, name, description, schedule string, max int) error {
	c, err := loadOrEmpty(path)
	if err != nil {
		return err
	}
	if _, exists := c[name]; exists {
		return fmt.Errorf("activity %q already exists in %s", name, path)
	}
	c[name] = catalog.Activity{
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: max,
		Participants:    []string{},
	}
	return save(path, c)
}

func removeActivity(path, name string) error {
	c, err := catalog.Load(path)
	if err != nil {
		return err
	}
	if _, exists := c[name]; !exists {
		return fmt.Errorf("activity %q not found in %s", name, path)
	}
	delete(c, name)
	return save(path, c)
}

func loadOrEmpty(path string) (catalog.Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return catalog.Catalog{}, nil
	}
	return catalog.Load(path)
}

func save(path string, c catalog.Catalog) error {
	if err := catalog.Validate(c); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func help() {
	fmt.Println(`Usage: catalog-tool <command> [flags]

Commands:
  add       Add a new activity to a catalog file
  remove    Remove an activity from a catalog file
  validate  Validate a catalog file against the schema and roster invariants`)
}
