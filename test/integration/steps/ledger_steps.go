package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cucumber/godog"
)

// registerLedgerSteps registers steps that seed ledger data through the API.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^today is "([^"]*)"$`, todayIs)
	ctx.Step(`^an? "(budget|external)" account "([^"]*)" in "([A-Z]{3})"$`, anAccountIn)
	ctx.Step(`^an? "(budget|external)" account "([^"]*)" in "([A-Z]{3})" with external id "([^"]*)"$`, anAccountWithExternalID)
	ctx.Step(`^an? "(income|expense|investment)" category "([^"]*)"$`, aCategory)
	ctx.Step(`^a payee "([^"]*)"$`, aPayee)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
	ctx.Step(`^the table "([^"]*)" should have (\d+) rows?$`, theTableShouldHaveRows)
}

func todayIs(ctx context.Context, date string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	t, err := time.ParseInLocation("2006-01-02", date, tc.cfg.Ledger.Location())
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	tc.clock.SetCurrentTime(t.Add(12 * time.Hour))
	return nil
}

func anAccountIn(ctx context.Context, accountType, name, currency string) (context.Context, error) {
	return anAccountWithExternalID(ctx, accountType, name, currency, "")
}

func anAccountWithExternalID(ctx context.Context, accountType, name, currency, externalID string) (context.Context, error) {
	body, err := json.Marshal(map[string]string{
		"name":        name,
		"currency":    currency,
		"type":        accountType,
		"external_id": externalID,
	})
	if err != nil {
		return ctx, err
	}
	return createNamed(ctx, "/api/v1/accounts", name, string(body))
}

func aCategory(ctx context.Context, categoryType, name string) (context.Context, error) {
	body, err := json.Marshal(map[string]string{"name": name, "type": categoryType})
	if err != nil {
		return ctx, err
	}
	return createNamed(ctx, "/api/v1/categories", name, string(body))
}

func aPayee(ctx context.Context, name string) (context.Context, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return ctx, err
	}
	return createNamed(ctx, "/api/v1/payees", name, string(body))
}

// createNamed posts body to endpoint and remembers the created id as name.
func createNamed(ctx context.Context, endpoint, name, body string) (context.Context, error) {
	ctx, err := sendRequest(ctx, http.MethodPost, endpoint, "application/json", body)
	if err != nil {
		return ctx, err
	}
	tc := GetTestContext(ctx)
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("failed to create %q: status %d, body: %s", name, tc.response.StatusCode, string(tc.responseBody))
	}
	return ctx, iSaveTheResponseFieldAs(ctx, "id", name)
}

func iSaveTheResponseFieldAs(ctx context.Context, field, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := responseField(tc.responseBody, field)
	if err != nil {
		return err
	}
	tc.ids[name] = fmt.Sprintf("%v", value)
	return nil
}

func theTableShouldHaveRows(ctx context.Context, table string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var count int64
	if err := tc.db.DbConn.Table(table).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count %s: %w", table, err)
	}
	if count != int64(expected) {
		return fmt.Errorf("table %s: expected %d rows, got %d", table, expected, count)
	}
	return nil
}
