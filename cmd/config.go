package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/color"
	"github.com/vixstremio/vixstremio/config"
	"github.com/vixstremio/vixstremio/filesystem"
	"github.com/vixstremio/vixstremio/icon"
	"github.com/vixstremio/vixstremio/style"
	"github.com/vixstremio/vixstremio/util"
	"github.com/vixstremio/vixstremio/where"
)

// suggestKey returns the registered key closest to a mistyped one.
func suggestKey(key string) string {
	return lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
}

func errUnknownKey(key string) error {
	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(suggestKey(key)),
	)
}

func requireKey(key string) config.Field {
	field, ok := config.Default[key]
	if !ok {
		handleErr(errUnknownKey(key))
	}
	return field
}

func completionConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// persistConfig writes the in-memory settings to vixstremio.toml, creating it when missing.
func persistConfig() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

func removeConfigFile() error {
	path := where.ConfigFile()
	exists, err := filesystem.API().Exists(path)
	if err != nil || !exists {
		return err
	}
	return util.Delete(path)
}

func success(cmd *cobra.Command, format string, args ...any) {
	cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change the addon settings stored in vixstremio.toml",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only describe these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print the fields as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe settings with their current value, default and environment variables",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))

		fields := lo.Values(config.Default)
		if len(keys) > 0 {
			fields = lo.Map(keys, func(key string, _ int) config.Field { return requireKey(key) })
		}
		sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(fields[i].Pretty())
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>...",
	Short:             "Change a setting and save it",
	Example:           "  vixstremio config set catalog.limit 50\n  vixstremio config set tmdb.rate_limit 0.5",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		requireKey(key)

		value, err := config.Parse(key, args[1:])
		handleErr(err)

		viper.Set(key, value)
		handleErr(persistConfig())
		success(cmd, "set %s to %s", style.Fg(color.Purple)(key), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the effective value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		requireKey(args[0])
		cmd.Println(viper.Get(args[0]))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Replace an existing file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Save the effective settings to vixstremio.toml",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(removeConfigFile())
		}

		handleErr(viper.SafeWriteConfig())
		success(cmd, "wrote config to %s", where.ConfigFile())
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove vixstremio.toml",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(removeConfigFile())
		success(cmd, "deleted %s", where.ConfigFile())
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every setting and remove vixstremio.toml")
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Restore a setting to its default",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		if all == (len(args) == 1) {
			handleErr(errors.New("pass either a key or --all"))
		}

		if all {
			for key, field := range config.Default {
				viper.Set(key, field.Value)
			}
			handleErr(removeConfigFile())
			success(cmd, "reset all settings")
			return
		}

		field := requireKey(args[0])
		viper.Set(field.Key, field.Value)
		handleErr(persistConfig())
		success(cmd, "reset %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
	},
}
