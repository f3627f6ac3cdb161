package config

import (
	"os"
	"strings"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var log = logging.GetLogger("config")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CORKY_"

// envKeys maps shorthand environment variables onto config keys.
var envKeys = map[string]string{
	"CORKY_GITHUB_USER":   "owner.github_user",
	"CORKY_OWNER_NAME":    "owner.name",
	"CORKY_MAILBOXES_DIR": "mailboxes.dir",
	"CORKY_GIT_HOST":      "mailboxes.git_host",
}

// Config is the merged corky configuration.
type Config struct {
	Owner     Owner     `koanf:"owner"`
	Mailboxes Mailboxes `koanf:"mailboxes"`
	Sync      Sync      `koanf:"sync"`
	Templates Templates `koanf:"templates"`
}

// Owner identifies the person whose tree the mailboxes live in.
type Owner struct {
	GithubUser string `koanf:"github_user"`
	Name       string `koanf:"name"`
}

// DisplayName returns the owner's name, falling back to the GitHub user.
func (o Owner) DisplayName() string {
	if o.Name != "" {
		return o.Name
	}
	return o.GithubUser
}

// Mailboxes holds the project layout and hosting settings.
type Mailboxes struct {
	Dir          string `koanf:"dir"`
	RegistryFile string `koanf:"registry_file"`
	GitHost      string `koanf:"git_host"`
	Visibility   string `koanf:"visibility"`
}

// Sync holds the commit messages the engine writes.
type Sync struct {
	SeedMessage   string `koanf:"seed_message"`
	CommitMessage string `koanf:"commit_message"`
	ResetMessage  string `koanf:"reset_message"`
}

// SeedMessageFor renders the seed commit message for a mailbox display name.
func (s Sync) SeedMessageFor(name string) string {
	return strings.ReplaceAll(s.SeedMessage, "{{name}}", name)
}

// Templates configures the generated files.
type Templates struct {
	VoiceFile string   `koanf:"voice_file"`
	Gitignore []string `koanf:"gitignore"`
}

// Sources lists the optional files layered over the defaults. Missing
// files are skipped.
type Sources struct {
	UserFile    string
	ProjectFile string
}

// Load merges defaults, the source files and the environment.
func Load(src Sources) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	for _, path := range []string{src.UserFile, src.ProjectFile} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
	}

	// CORKY_SECTION__KEY addresses any key, e.g. CORKY_SYNC__COMMIT_MESSAGE.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}
	if short := shorthandEnvironment(); len(short) > 0 {
		if err := k.Load(confmap.Provider(short, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

func envKey(name string) string {
	name = strings.TrimPrefix(name, EnvPrefix)
	if !strings.Contains(name, "__") {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(name), "__", ".")
}

func shorthandEnvironment() map[string]interface{} {
	out := make(map[string]interface{})
	for name, key := range envKeys {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			out[key] = v
		}
	}
	return out
}
