package cmd

import (
	"fmt"
	"time"

	"bucket-manager/feature/objects"

	"github.com/spf13/cobra"
)

// objectCmd groups the object level commands
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Manage objects inside a bucket",
}

var objectCopyCmd = &cobra.Command{
	Use:   "copy SRC_BUCKET DST_BUCKET SRC_KEY [DST_KEY]",
	Short: "Copy an object server-side",
	Long:  `Copies SRC_BUCKET/SRC_KEY to DST_BUCKET/DST_KEY. DST_KEY defaults to SRC_KEY.`,
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		dstKey := args[2]
		if len(args) == 4 {
			dstKey = args[3]
		}

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		return objects.NewService(rt.client, rt.logger).Copy(cmd.Context(), args[0], args[1], args[2], dstKey)
	},
}

var objectDeleteCmd = &cobra.Command{
	Use:   "delete BUCKET KEY...",
	Short: "Delete objects",
	Long:  `Deletes the given keys. With --all-versions every version and delete marker of each key is removed permanently.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		allVersions, _ := cmd.Flags().GetBool("all-versions")

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc := objects.NewService(rt.client, rt.logger)
		if allVersions {
			_, err := svc.Purge(cmd.Context(), args[0], args[1:])
			return err
		}
		return svc.Delete(cmd.Context(), args[0], args[1:])
	},
}

var objectUploadCmd = &cobra.Command{
	Use:   "upload BUCKET PATH",
	Short: "Upload a local file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		result, err := objects.NewService(rt.client, rt.logger).Upload(cmd.Context(), args[0], args[1], key)
		if err != nil {
			return err
		}
		fmt.Printf("%s/%s\n", result.Bucket, result.Key)
		return nil
	},
}

var objectDownloadCmd = &cobra.Command{
	Use:   "download BUCKET KEY",
	Short: "Download an object to a local file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		path, err := objects.NewService(rt.client, rt.logger).Download(cmd.Context(), args[0], args[1], output)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var objectMkdirCmd = &cobra.Command{
	Use:   "mkdir BUCKET PATH",
	Short: "Create a folder marker object",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		key, err := objects.NewService(rt.client, rt.logger).CreateFolder(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(key)
		return nil
	},
}

var objectPresignCmd = &cobra.Command{
	Use:   "presign BUCKET KEY",
	Short: "Print a presigned GET URL",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		expires, _ := cmd.Flags().GetInt("expires")

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		u, _, err := objects.NewService(rt.client, rt.logger).Presign(cmd.Context(), args[0], args[1], time.Duration(expires)*time.Second)
		if err != nil {
			return err
		}
		fmt.Println(u)
		return nil
	},
}

var objectListCmd = &cobra.Command{
	Use:   "list BUCKET",
	Short: "List every key in a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asURLs, _ := cmd.Flags().GetBool("urls")
		endpoint, _ := cmd.Flags().GetString("endpoint")

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc := objects.NewService(rt.client, rt.logger)
		var lines []string
		if asURLs {
			lines, err = svc.URLs(cmd.Context(), args[0], endpoint)
		} else {
			lines, err = svc.Keys(cmd.Context(), args[0])
		}
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(objectCmd)
	objectCmd.AddCommand(
		objectCopyCmd,
		objectDeleteCmd,
		objectUploadCmd,
		objectDownloadCmd,
		objectMkdirCmd,
		objectPresignCmd,
		objectListCmd,
	)

	objectDeleteCmd.Flags().Bool("all-versions", false, "Remove every version and delete marker")
	objectUploadCmd.Flags().String("key", "", "Remote key (defaults to the file name)")
	objectDownloadCmd.Flags().StringP("output", "o", "", "Local path (defaults to the key)")
	objectPresignCmd.Flags().Int("expires", 0, "Lifetime in seconds (defaults to storage.presign_expiry_seconds)")
	objectListCmd.Flags().Bool("urls", false, "Print {endpoint}/{bucket}/{key} instead of keys")
	objectListCmd.Flags().String("endpoint", "", "URL prefix for --urls (defaults to the configured endpoint)")
}
