// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package irc

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"reflect"
	"strings"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/ergochat/irc-go/ircutils"
	"gopkg.in/yaml.v2"

	"github.com/ergochat/ergoclient/irc/logger"
	"github.com/ergochat/ergoclient/irc/message"
	"github.com/ergochat/ergoclient/irc/text"
)

const (
	// environment variables of the form ERGOCLIENT__SECTION__KEY=value
	// override the config file
	envOverridePrefix = "ERGOCLIENT__"

	defaultPlainPort = 6667
	defaultTLSPort   = 6697
)

// TLSConfig controls the TLS connection to the server.
type TLSConfig struct {
	Enabled            bool
	InsecureSkipVerify bool   `yaml:"insecure-skip-verify"`
	ServerName         string `yaml:"server-name"`
	// Cert and Key are a PEM client certificate for CertFP
	Cert string
	Key  string
}

// ServerConfig describes where and how to connect.
type ServerConfig struct {
	Host              string
	Port              int
	TLS               TLSConfig     `yaml:"tls"`
	WebSocket         string        `yaml:"websocket"`
	DialTimeoutString string        `yaml:"dial-timeout"`
	DialTimeout       time.Duration `yaml:"-"`
}

// TLSConfig builds the *tls.Config for this server, loading the client
// certificate if one is configured.
func (conf ServerConfig) TLSConfig() (*tls.Config, error) {
	result := &tls.Config{
		ServerName:         conf.TLS.ServerName,
		InsecureSkipVerify: conf.TLS.InsecureSkipVerify,
	}
	if conf.TLS.Cert != "" || conf.TLS.Key != "" {
		cert, err := tls.LoadX509KeyPair(conf.TLS.Cert, conf.TLS.Key)
		if err != nil {
			return nil, ErrInvalidCertKeyPair
		}
		result.Certificates = []tls.Certificate{cert}
	}
	return result, nil
}

// IdentityConfig is what the client registers as.
type IdentityConfig struct {
	Nick     string
	User     string
	Realname string
	Password string
}

// LimitsConfig bounds line sizes in both directions.
type LimitsConfig struct {
	MaxLineLen     int    `yaml:"max-line-len"`
	MaxReadQString string `yaml:"max-readq"`
	MaxReadQ       int    `yaml:"-"`
}

// EncodingConfig names the fallback for inbound lines that aren't UTF-8.
type EncodingConfig struct {
	Fallback string
	decoder  *text.Decoder
}

// BotConfig is read by the bundled echo bot.
type BotConfig struct {
	VersionReply string `yaml:"version-reply"`
	WrapWidth    int    `yaml:"wrap-width"`
}

// Config defines the overall configuration.
type Config struct {
	Server   ServerConfig
	Identity IdentityConfig
	Channels []string
	Limits   LimitsConfig
	Encoding EncodingConfig
	Logging  []logger.LoggingConfig
	LockFile string `yaml:"lock-file"`
	Bot      BotConfig

	Filename string `yaml:"-"`
}

// ClientOptions returns the client options this config describes. log may
// be nil, in which case nothing is logged.
func (conf *Config) ClientOptions(log *logger.Manager) []Option {
	opts := []Option{
		WithMaxLineLen(conf.Limits.MaxLineLen),
		WithMaxReadQ(conf.Limits.MaxReadQ),
		WithDialTimeout(conf.Server.DialTimeout),
	}
	if conf.Encoding.decoder != nil {
		opts = append(opts, WithDecoder(conf.Encoding.decoder))
	}
	if log != nil {
		opts = append(opts, WithLogger(log))
	}
	return opts
}

type configPathError struct {
	name    string
	desc    string
	yamlErr error
}

func (ce *configPathError) Error() string {
	if ce.yamlErr != nil {
		return fmt.Sprintf("Couldn't apply config override `%s`: %s: %v", ce.name, ce.desc, ce.yamlErr)
	}
	return fmt.Sprintf("Couldn't apply config override `%s`: %s", ce.name, ce.desc)
}

func isExported(field reflect.StructField) bool {
	return field.PkgPath == "" // https://golang.org/pkg/reflect/#StructField
}

// mungeFromEnvironment applies one environment override, e.g.
// ERGOCLIENT__SERVER__TLS__ENABLED=true, decoding the value as YAML into
// the field the path names. Path components match yaml tags, with
// underscores standing for hyphens, or else field names.
func mungeFromEnvironment(config *Config, envPair string) (applied bool, name string, err *configPathError) {
	equalIdx := strings.IndexByte(envPair, '=')
	if equalIdx == -1 {
		return false, "", nil
	}
	name, value := envPair[:equalIdx], envPair[equalIdx+1:]
	if !strings.HasPrefix(name, envOverridePrefix) {
		return false, "", nil
	}
	name = strings.TrimPrefix(name, envOverridePrefix)
	pathComponents := strings.Split(name, "__")
	for i, pathComponent := range pathComponents {
		pathComponents[i] = strings.ToLower(strings.ReplaceAll(pathComponent, "_", "-"))
	}

	v := reflect.Indirect(reflect.ValueOf(config))
	t := v.Type()
	for _, component := range pathComponents {
		if component == "" {
			return false, "", &configPathError{name, "invalid", nil}
		}
		if v.Kind() != reflect.Struct {
			return false, "", &configPathError{name, "index into non-struct", nil}
		}
		var nextField reflect.StructField
		success := false
		n := t.NumField()
		// preferentially get a field with an exact yaml tag match,
		// then fall back to case-insensitive comparison of field names
		for i := 0; i < n; i++ {
			field := t.Field(i)
			if isExported(field) && field.Tag.Get("yaml") == component {
				nextField = field
				success = true
				break
			}
		}
		if !success {
			for i := 0; i < n; i++ {
				field := t.Field(i)
				if isExported(field) && field.Tag.Get("yaml") != "-" && strings.ToLower(field.Name) == component {
					nextField = field
					success = true
					break
				}
			}
		}
		if !success {
			return false, "", &configPathError{name, fmt.Sprintf("couldn't resolve path component: `%s`", component), nil}
		}
		v = v.FieldByName(nextField.Name)
		if v.Kind() == reflect.Ptr {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = reflect.Indirect(v)
		}
		t = v.Type()
	}
	yamlErr := yaml.Unmarshal([]byte(value), v.Addr().Interface())
	if yamlErr != nil {
		return false, "", &configPathError{name, "couldn't deserialize YAML", yamlErr}
	}
	return true, name, nil
}

// LoadConfig loads the given YAML configuration file, applies environment
// overrides and validates the result.
func LoadConfig(filename string) (config *Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = new(Config)
	}

	for _, envPair := range os.Environ() {
		_, _, envErr := mungeFromEnvironment(config, envPair)
		if envErr != nil {
			return nil, envErr
		}
	}

	config.Filename = filename
	if err = config.postprocess(); err != nil {
		return nil, err
	}
	return config, nil
}

func (config *Config) postprocess() (err error) {
	server := &config.Server
	if server.WebSocket != "" {
		if !(strings.HasPrefix(server.WebSocket, "ws://") || strings.HasPrefix(server.WebSocket, "wss://")) {
			return fmt.Errorf("Websocket URL must start with ws:// or wss://: %s", server.WebSocket)
		}
	} else {
		if server.Host == "" {
			return ErrServerHostMissing
		}
		if !ircutils.HostnameIsValid(server.Host) && net.ParseIP(server.Host) == nil {
			return ErrServerHostNotHostname
		}
		if server.Port == 0 {
			if server.TLS.Enabled {
				server.Port = defaultTLSPort
			} else {
				server.Port = defaultPlainPort
			}
		}
		if server.Port < 1 || 65535 < server.Port {
			return ErrServerPortInvalid
		}
	}
	if server.DialTimeoutString == "" {
		server.DialTimeout = DefaultDialTimeout
	} else {
		server.DialTimeout, err = time.ParseDuration(server.DialTimeoutString)
		if err != nil {
			return fmt.Errorf("Could not parse dial-timeout: %s", err.Error())
		}
	}

	if config.Identity.Nick == "" {
		return ErrNickMissing
	}
	if config.Identity.User == "" {
		config.Identity.User = config.Identity.Nick
	}
	if config.Identity.Realname == "" {
		config.Identity.Realname = config.Identity.Nick
	}

	// process limits
	if config.Limits.MaxLineLen == 0 {
		config.Limits.MaxLineLen = message.MaxLineLen
	} else if config.Limits.MaxLineLen < message.MaxLineLen {
		return ErrLineLengthsTooSmall
	}
	if config.Limits.MaxReadQString == "" {
		config.Limits.MaxReadQ = DefaultMaxReadQ
	} else {
		maxReadQBytes, err := bytefmt.ToBytes(config.Limits.MaxReadQString)
		if err != nil {
			return fmt.Errorf("Could not parse maximum ReadQ size (make sure it only contains whole numbers): %s", err.Error())
		}
		config.Limits.MaxReadQ = int(maxReadQBytes)
	}

	config.Encoding.decoder, err = text.NewDecoder(config.Encoding.Fallback)
	if err != nil {
		return fmt.Errorf("Could not load fallback encoding [%s]: %s", config.Encoding.Fallback, err.Error())
	}

	var newLogConfigs []logger.LoggingConfig
	for _, logConfig := range config.Logging {
		// methods
		methods := make(map[string]bool)
		for _, method := range strings.Split(logConfig.Method, " ") {
			if len(method) > 0 {
				methods[strings.ToLower(method)] = true
			}
		}
		if methods["file"] && logConfig.Filename == "" {
			return ErrLoggerFilenameMissing
		}
		logConfig.MethodFile = methods["file"]
		logConfig.MethodStdout = methods["stdout"]
		logConfig.MethodStderr = methods["stderr"]

		// levels
		level, exists := logger.LogLevelNames[strings.ToLower(logConfig.LevelString)]
		if !exists {
			return fmt.Errorf("Could not translate log level [%s]", logConfig.LevelString)
		}
		logConfig.Level = level

		// types
		for _, typeStr := range strings.Split(logConfig.TypeString, " ") {
			if len(typeStr) == 0 {
				continue
			}
			if typeStr == "-" {
				return ErrLoggerExcludeEmpty
			}
			if typeStr[0] == '-' {
				typeStr = typeStr[1:]
				logConfig.ExcludedTypes = append(logConfig.ExcludedTypes, typeStr)
			} else {
				logConfig.Types = append(logConfig.Types, typeStr)
			}
		}
		if len(logConfig.Types) < 1 {
			return ErrLoggerHasNoTypes
		}

		newLogConfigs = append(newLogConfigs, logConfig)
	}
	config.Logging = newLogConfigs

	return nil
}
