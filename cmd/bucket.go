package cmd

import (
	"fmt"
	"os"
	"time"

	"bucket-manager/feature/buckets"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

// bucketCmd groups the bucket level commands
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Manage buckets",
}

var bucketListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every bucket",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		list, err := buckets.NewService(rt.client, rt.logger).List(cmd.Context())
		if err != nil {
			return err
		}

		if raw {
			enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		}
		for _, b := range list {
			if b.CreationDate.IsZero() {
				fmt.Println(b.Name)
				continue
			}
			fmt.Printf("%s\t%s\n", b.Name, b.CreationDate.Format(time.RFC3339))
		}
		return nil
	},
}

var bucketCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a bucket",
	Long:  `Creates a bucket. With --secure all four public-access-block flags are applied right after creation.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secure, _ := cmd.Flags().GetBool("secure")

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		return buckets.NewService(rt.client, rt.logger).Create(cmd.Context(), args[0], secure)
	},
}

var bucketDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete an empty bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		return buckets.NewService(rt.client, rt.logger).Delete(cmd.Context(), args[0])
	},
}

var bucketBlockCmd = &cobra.Command{
	Use:   "block-public NAME",
	Short: "Block all public access to a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		return buckets.NewService(rt.client, rt.logger).BlockPublicAccess(cmd.Context(), args[0])
	},
}

var bucketAccessCmd = &cobra.Command{
	Use:   "access NAME",
	Short: "Show the public-access-block configuration of a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		block, err := buckets.NewService(rt.client, rt.logger).AccessBlock(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("BlockPublicAcls:       %t\n", block.BlockPublicAcls)
		fmt.Printf("IgnorePublicAcls:      %t\n", block.IgnorePublicAcls)
		fmt.Printf("BlockPublicPolicy:     %t\n", block.BlockPublicPolicy)
		fmt.Printf("RestrictPublicBuckets: %t\n", block.RestrictPublicBuckets)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(bucketCmd)
	bucketCmd.AddCommand(bucketListCmd, bucketCreateCmd, bucketDeleteCmd, bucketBlockCmd, bucketAccessCmd)

	bucketListCmd.Flags().Bool("raw", false, "Print the full listing as JSON")
	bucketCreateCmd.Flags().Bool("secure", false, "Block public access after creation")
}
