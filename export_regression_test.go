package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/labregistry_backend/config"
	"bitbucket.org/mmdatafocus/labregistry_backend/models"
	"github.com/gin-gonic/gin"
)

// Regression: the instrument register export must stream a real xlsx file
// (zip container) with the spreadsheet content type and an attachment
// disposition named after the organization.
func TestInstrumentExportContentType(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	ctx := context.Background()

	redisName, redisPort := startTestRedis(t)
	t.Cleanup(func() { _ = removeTestContainer(redisName) })

	mysqlName, mysqlPort := startTestMySQL(t)
	t.Cleanup(func() { _ = removeTestContainer(mysqlName) })

	t.Setenv("REDIS_ADDRESS", fmt.Sprintf("127.0.0.1:%s", redisPort))
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "testpw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", mysqlPort)
	t.Setenv("DB_NAME", "labregistry_test")

	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()
	models.MigrateTable()

	if err := config.ClearRedis(ctx); err != nil {
		t.Fatalf("ClearRedis: %v", err)
	}

	org, err := models.CreateOrganization(ctx, &models.NewOrganization{
		LabName:     "Export Test Lab",
		LabAddress:  "12 Industrial Estate",
		LabState:    "Maharashtra",
		LabDistrict: "Pune",
		LabCity:     "Pune",
		LabPinCode:  "411001",
	})
	if err != nil {
		t.Fatalf("CreateOrganization: %v", err)
	}

	if _, err := models.CreateInstrument(ctx, org.ID, &models.InstrumentInput{
		Name:         "Analytical Balance",
		Make:         "Mettler",
		SerialNumber: "MB-1001",
	}); err != nil {
		t.Fatalf("CreateInstrument: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerDashboardRoutes(r.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/instruments/export?organization_id="+org.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d, body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") || !strings.Contains(cd, org.ID) {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	// xlsx is a zip archive.
	if body := w.Body.Bytes(); len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Fatalf("export body is not a zip archive")
	}
}

func startTestRedis(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("labregistry-export-redis-%d", time.Now().UnixNano())
	out, err := dockerCommand(
		"run", "-d", "--name", name,
		"-p", "127.0.0.1:0:6379",
		"redis:7-alpine",
	)
	if err != nil {
		t.Fatalf("start redis container: %v\n%s", err, out)
	}
	port, err := containerHostPort(name, "6379/tcp")
	if err != nil {
		t.Fatalf("redis docker port: %v", err)
	}
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerCommand("exec", name, "redis-cli", "ping")
		if err == nil {
			return name, port
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatalf("redis did not become ready")
	return "", ""
}

func startTestMySQL(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("labregistry-export-mysql-%d", time.Now().UnixNano())
	out, err := dockerCommand(
		"run", "-d", "--name", name,
		"-e", "MYSQL_ROOT_PASSWORD=testpw",
		"-e", "MYSQL_DATABASE=labregistry_test",
		"-p", "127.0.0.1:0:3306",
		"mysql:8.0",
		"--default-authentication-plugin=mysql_native_password",
	)
	if err != nil {
		t.Fatalf("start mysql container: %v\n%s", err, out)
	}
	port, err := containerHostPort(name, "3306/tcp")
	if err != nil {
		t.Fatalf("mysql docker port: %v", err)
	}
	deadline := time.Now().Add(120 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerCommand("exec", name, "mysqladmin", "ping", "-h", "127.0.0.1", "-ptestpw", "--silent")
		if err == nil {
			return name, port
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("mysql did not become ready")
	return "", ""
}

func containerHostPort(container, portProto string) (string, error) {
	out, err := dockerCommand("port", container, portProto)
	if err != nil {
		return "", fmt.Errorf("docker port: %w: %s", err, out)
	}
	re := regexp.MustCompile(`:(\d+)`)
	m := re.FindStringSubmatch(out)
	if len(m) != 2 {
		return "", fmt.Errorf("unexpected docker port output: %q", out)
	}
	return m[1], nil
}

func removeTestContainer(container string) error {
	if strings.TrimSpace(container) == "" {
		return nil
	}
	_, err := dockerCommand("rm", "-f", container)
	return err
}

func dockerCommand(args ...string) (string, error) {
	cmd := exec.Command("docker", args...)
	b, err := cmd.CombinedOutput()
	return string(b), err
}
