package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"object-gateway/core/objectstore"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var bucketFlag string

// objectCmd groups the single-object operations.
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Operate on individual objects",
	Long:  `Put, get, remove, probe, sign and list objects using the configured storage.`,
}

var objectPutCmd = &cobra.Command{
	Use:   "put <key> <file|->",
	Short: "Upload a file (or stdin with -)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args[1])
		if err != nil {
			return err
		}
		return withStore(func(store *objectstore.Store) error {
			if err := store.Put(cmd.Context(), bucketFlag, args[0], data); err != nil {
				return fmt.Errorf("upload failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %s (%d bytes)\n", store.Key(args[0]), len(data))
			return nil
		})
	},
}

var objectGetCmd = &cobra.Command{
	Use:   "get <key> [file]",
	Short: "Download an object to a file or stdout",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *objectstore.Store) error {
			data, err := store.Fetch(cmd.Context(), bucketFlag, args[0])
			if err != nil {
				return fmt.Errorf("object %s could not be read: %w", store.Key(args[0]), err)
			}
			if len(args) == 2 && args[1] != "-" {
				return os.WriteFile(args[1], data, 0o644)
			}
			_, err := cmd.OutOrStdout().Write(data)
			return err
		})
	},
}

var objectRmCmd = &cobra.Command{
	Use:   "rm <key>...",
	Short: "Delete one or more objects",
	Long:  `Deletes the given keys concurrently. Failures are logged and never change the exit code.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *objectstore.Store) error {
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(8)
			for _, key := range args {
				g.Go(func() error {
					store.Remove(ctx, bucketFlag, key)
					return nil
				})
			}
			return g.Wait()
		})
	},
}

var objectExistsCmd = &cobra.Command{
	Use:   "exists <key>",
	Short: "Report whether an object exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *objectstore.Store) error {
			fmt.Fprintln(cmd.OutOrStdout(), store.Exists(cmd.Context(), bucketFlag, args[0]))
			return nil
		})
	},
}

var objectURLCmd = &cobra.Command{
	Use:   "url <key>",
	Short: "Print a presigned download URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expires, _ := cmd.Flags().GetDuration("expires")
		return withStore(func(store *objectstore.Store) error {
			signed, ok := store.PresignedURL(cmd.Context(), bucketFlag, args[0], expires)
			if !ok {
				return fmt.Errorf("could not presign %s", store.Key(args[0]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		})
	},
}

var objectLsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List objects under a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recursive, _ := cmd.Flags().GetBool("recursive")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}

		return withStore(func(store *objectstore.Store) error {
			objects, err := store.List(cmd.Context(), bucketFlag, dir, recursive)
			if err != nil {
				return fmt.Errorf("list failed: %w", err)
			}
			if jsonOutput {
				enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(objects)
			}
			for _, o := range objects {
				fmt.Fprintf(cmd.OutOrStdout(), "%10d  %s  %s\n", o.Size, o.LastModified.Format(time.RFC3339), o.Key)
			}
			return nil
		})
	},
}

// withStore opens the store for a one-shot command.
func withStore(fn func(store *objectstore.Store) error) error {
	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	store, err := openStore(cfg, logg)
	if err != nil {
		return err
	}
	return fn(store)
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func init() {
	objectCmd.PersistentFlags().StringVar(&bucketFlag, "bucket", "", "Bucket to use when no default bucket is configured")
	objectURLCmd.Flags().Duration("expires", objectstore.DefaultPresignExpiry, "URL lifetime")
	objectLsCmd.Flags().Bool("recursive", true, "Recurse into sub-directories")
	objectLsCmd.Flags().Bool("json", false, "Output JSON")

	objectCmd.AddCommand(objectPutCmd, objectGetCmd, objectRmCmd, objectExistsCmd, objectURLCmd, objectLsCmd)
	RootCmd.AddCommand(objectCmd)
}
