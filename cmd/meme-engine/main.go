package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/memekit/image-engine/internal/assets"
	"github.com/memekit/image-engine/internal/config"
	"github.com/memekit/image-engine/internal/meme"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	var (
		avatarPath string
		outPath    string
		opts       meme.Options
	)

	rootCmd := &cobra.Command{
		Use:  "meme-engine",
		Long: "Compose avatar memes from local image files",
	}

	renderCmd := &cobra.Command{
		Use:   "render <kind>",
		Short: "Render a meme to a PNG or GIF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return render(args[0], avatarPath, outPath, opts)
		},
	}

	renderCmd.Flags().StringVar(&avatarPath, "avatar", "", "Path to the avatar image (png/jpeg/gif/webp)")
	renderCmd.Flags().StringVar(&outPath, "out", "out.png", "Path to write the encoded result to")
	renderCmd.Flags().BoolVar(&opts.Large, "large", false, "Render at the 1000px template scale instead of 250px")
	renderCmd.Flags().BoolVar(&opts.Flip, "flip", false, "Mirror the avatar horizontally")
	renderCmd.Flags().Float64Var(&opts.Feather, "feather", 0, "Gaussian sigma for softening the avatar rim (0 = hard edge)")
	if err := renderCmd.MarkFlagRequired("avatar"); err != nil {
		log.Fatal(err)
	}

	rootCmd.AddCommand(renderCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func render(kindName, avatarPath, outPath string, opts meme.Options) error {
	kind, err := meme.ParseKind(kindName)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	variant := assets.Small
	if opts.Large {
		variant = assets.Large
	}
	template, err := assets.NewLibrary(cfg.AssetRoot).Load(kind.Asset(), variant)
	if err != nil {
		return fmt.Errorf("load template for %s: %w", kind, err)
	}

	avatar, err := assets.DecodeFile(avatarPath)
	if err != nil {
		return fmt.Errorf("load avatar: %w", err)
	}

	out, err := meme.Render(kind, avatar, template, opts)
	if err != nil {
		return fmt.Errorf("render %s: %w", kind, err)
	}

	if err := os.WriteFile(outPath, out.Bytes, 0o644); err != nil {
		return err
	}
	log.Printf("wrote %d %s bytes to %s", len(out.Bytes), out.Format, outPath)
	return nil
}
