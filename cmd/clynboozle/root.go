package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the flags shared by every subcommand
type Config struct {
	dbPath        string
	redisAddr     string
	redisPassword string
	discordToken  string
	applicationID string
	guildID       string
}

func newRootCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CLYNBOOZLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "clynboozle",
		Short:         "Team trivia for game night, in the terminal or on Discord.",
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	fs := cmd.PersistentFlags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&cfg.dbPath, "db", "clynboozle.db", "path to the sqlite question bank (env: CLYNBOOZLE_DB)")
	fs.StringVar(&cfg.redisAddr, "redis-addr", "localhost:6379", "redis address for session state (env: CLYNBOOZLE_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: CLYNBOOZLE_REDIS_PASSWORD)")
	fs.StringVar(&cfg.discordToken, "discord-token", "", "discord bot token (env: CLYNBOOZLE_DISCORD_TOKEN)")
	fs.StringVar(&cfg.applicationID, "application-id", "", "discord application ID (env: CLYNBOOZLE_APPLICATION_ID)")
	fs.StringVar(&cfg.guildID, "guild-id", "", "guild ID for development, registers commands per-guild (env: CLYNBOOZLE_GUILD_ID)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetVersionTemplate("clynboozle v{{.Version}}\n")

	cmd.AddCommand(newBotCmd(cfg))
	cmd.AddCommand(newPlayCmd(cfg))
	cmd.AddCommand(newImportCmd(cfg))

	return cmd
}
