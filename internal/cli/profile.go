package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) showProfile(ctx context.Context) error {
	p, err := a.profiles.Load(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Name:    %s\n", p.DisplayName())
	fmt.Printf("Email:   %s\n", p.Email)
	fmt.Printf("Phone:   %s\n", p.Phone)
	fmt.Printf("Address: %s\n", p.Address)
	if p.Subject != "" {
		fmt.Printf("Subject: %s\n", p.Subject)
	}
	if p.Department != "" {
		fmt.Printf("Department: %s\n", p.Department)
	}
	if p.Class != "" {
		fmt.Printf("Class: %s\n", p.Class)
	}
	if p.Bio != "" {
		fmt.Printf("Bio: %s\n", p.Bio)
	}
	fmt.Printf("Avatar: %v\n", p.Avatar != nil)
	return nil
}

// editProfile collects field=value edits until an empty line, then saves them
// as one batched write. Typing "discard" abandons the working copy.
func (a *App) editProfile(ctx context.Context) error {
	changes := map[string]any{}
	for {
		line, err := getSimpleText(a.reader, "Field and value as field=value (empty line to save, 'discard' to abandon)", os.Stdout)
		if err != nil {
			return err
		}
		if line == "" {
			break
		}
		if line == "discard" {
			if _, err := a.profiles.Discard(ctx); err != nil {
				return err
			}
			fmt.Println("Changes discarded")
			return nil
		}
		name, value, ok := splitPair(line)
		if !ok {
			fmt.Println("Expected field=value")
			continue
		}
		changes[name] = value
	}
	if len(changes) == 0 {
		fmt.Println("Nothing to save")
		return nil
	}

	p, err := a.profiles.Save(ctx, changes)
	if err != nil {
		return err
	}
	fmt.Printf("Saved profile for %s\n", p.DisplayName())
	return nil
}

func (a *App) setAvatar(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to image file", os.Stdout)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if _, err := a.profiles.SetAvatar(ctx, data, mimeTypeByExt(path)); err != nil {
		return err
	}
	fmt.Println("Avatar updated")
	return nil
}
