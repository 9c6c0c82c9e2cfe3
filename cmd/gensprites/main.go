package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"mirefall.dev/mirefall/fallback"
	"mirefall.dev/mirefall/sprite"
)

func main() {
	outDir := flag.String("out", "assets/generated", "Output directory for generated sheets")
	flag.Parse()

	fmt.Println("Mirefall Fallback Sprite Generator")
	fmt.Println("==================================")
	fmt.Println()

	if err := generate(*outDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Fallback sheets are ready for inspection.")
}

func generate(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	sheets := []struct {
		name string
		path string
	}{
		{"monsters", filepath.Join(outDir, "monsters.png")},
		{"weapons", filepath.Join(outDir, "weapons.png")},
		{"hero", filepath.Join(outDir, "hero.png")},
	}

	for _, s := range sheets {
		var err error
		switch s.name {
		case "monsters":
			err = fallback.SavePNG(fallback.BuildMonsterSheet(), s.path)
		case "weapons":
			err = fallback.SavePNG(fallback.BuildWeaponSheet(), s.path)
		case "hero":
			err = fallback.SavePNG(fallback.CreateHero(), s.path)
		}
		if err != nil {
			return fmt.Errorf("failed to write %s sheet: %w", s.name, err)
		}
		fmt.Printf("  wrote %s\n", s.path)
	}

	fmt.Printf("  (%d monsters, %d weapons)\n", len(sprite.MonsterNames), len(sprite.WeaponNames))
	return nil
}
