package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS        = ""          // e.g. "example.com,example2.com"
	MYSQL_DSN          = ""          // MySQL will be used if this is set
	SQLITE_FILE        = "server.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS       = "0.0.0.0:8080"
	UPLOADS_DIR        = "uploads"   // Default disk bucket for post images
	TEMPLATES_DIR      = "templates" // Directory containing the *.tmpl files
	TMP_DIR            = "/tmp"      // Scratch space for S3 buckets
	SESSION_KEY        = "change me in production"
	DEBUG_MODE         = true
	POSTS_PER_PAGE     = 10 // Feed page size
	PAGE_CACHE_SECONDS = 20 // TTL for the rendered global feed
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("UPLOADS_DIR", &UPLOADS_DIR)
	readEnvString("TEMPLATES_DIR", &TEMPLATES_DIR)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("POSTS_PER_PAGE", &POSTS_PER_PAGE)
	readEnvInt("PAGE_CACHE_SECONDS", &PAGE_CACHE_SECONDS)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
