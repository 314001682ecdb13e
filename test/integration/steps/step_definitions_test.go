// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/check2check/backend/config"
	"github.com/check2check/backend/internal/infra/dependency"
	"github.com/check2check/backend/internal/integration/persistence/model"
	"github.com/check2check/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken  string
	refreshToken string
	resetToken   string
	expiredToken string

	currentUserID     uuid.UUID
	ownerUserID       uuid.UUID
	currentCycleID    uuid.UUID
	currentGoalID     uuid.UUID
	accountIDs        []uuid.UUID
	inviteToken       string
	currentRequestID  uuid.UUID
	lastTransactionID uuid.UUID
	transactionIDs    []uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("EMAIL_WORKER_ENABLED", "false")
		_ = os.Setenv("GEMINI_API_KEY", "")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("check2check", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"budget_cycles":         &model.BudgetCycleModel{},
			"budget_items":          &model.BudgetItemModel{},
			"transactions":          &model.TransactionModel{},
			"goals":                 &model.GoalModel{},
			"accounts":              &model.AccountModel{},
			"share_invites":         &model.ShareInviteModel{},
			"budget_shares":         &model.BudgetShareModel{},
			"action_requests":       &model.ActionRequestModel{},
			"email_queue":           &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the user "([^"]*)" exists$`, test.theUserExists)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Cycle setup steps
	ctx.Given(`^an active cycle exists from "([^"]*)" to "([^"]*)"$`, test.anActiveCycleExistsFromTo)
	ctx.Given(`^a completed cycle exists from "([^"]*)" to "([^"]*)"$`, test.aCompletedCycleExistsFromTo)
	ctx.Given(`^the cycle has an? "([^"]*)" item "([^"]*)" with amount "([^"]*)"$`, test.theCycleHasAnItemWithAmount)
	ctx.Given(`^the cycle has an? "([^"]*)" item "([^"]*)" in category "([^"]*)" with amount "([^"]*)"$`, test.theCycleHasAnItemInCategoryWithAmount)
	ctx.Given(`^the cycle has a debt item "([^"]*)" with amount "([^"]*)", balance "([^"]*)" and interest rate "([^"]*)"$`, test.theCycleHasADebtItem)

	// Goal setup steps
	ctx.Given(`^a "([^"]*)" goal "([^"]*)" exists with target "([^"]*)" and current "([^"]*)"$`, test.aGoalExistsWithTargetAndCurrent)

	// Account setup steps
	ctx.Given(`^an account "([^"]*)" of type "([^"]*)" with balance "([^"]*)" exists$`, test.anAccountExists)

	// Share setup steps
	ctx.Given(`^a budget share invite exists for "([^"]*)"$`, test.aBudgetShareInviteExistsFor)
	ctx.Given(`^"([^"]*)" shares their budget with "([^"]*)"$`, test.sharesTheirBudgetWith)
	ctx.Given(`^a pending action request exists for item "([^"]*)"$`, test.aPendingActionRequestExistsForItem)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.ownerUserID = uuid.Nil
	t.currentCycleID = uuid.Nil
	t.currentGoalID = uuid.Nil
	t.accountIDs = nil
	t.inviteToken = ""
	t.currentRequestID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.transactionIDs = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

// startServer wires the full application through the injector against the
// in-memory sqlite database and miniredis, then serves it on a random port.
func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
			engine := injector.Router.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CurrencyCode: "USD",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokensFor(t.currentUserID, "test@example.com")
}

// theUserExists creates a user with the given email if they don't already exist.
func (t *testContext) theUserExists(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err == nil {
		return nil
	}

	userID := uuid.New()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         "Test User " + email,
		PasswordHash: hashPassword("SecurePass123!"),
		CurrencyCode: "USD",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

// iAmLoggedInAs switches the current logged in user to the specified email.
func (t *testContext) iAmLoggedInAs(email string) error {
	if err := t.theUserExists(email); err != nil {
		return err
	}

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	t.currentUserID = userModel.ID
	return t.issueTokensFor(userModel.ID, email)
}

func (t *testContext) issueTokensFor(userID uuid.UUID, email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "check2check",
		"sub":        userID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "check2check",
		"sub":        userID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	// Store refresh token so logout/refresh flows can invalidate it
	var existingToken model.RefreshTokenModel
	if err := t.db.DbConn.Where("user_id = ?", userID).First(&existingToken).Error; err == nil {
		existingToken.Token = t.refreshToken
		existingToken.Invalidated = false
		existingToken.ExpiresAt = now.Add(7 * 24 * time.Hour)
		return t.db.DbConn.Save(&existingToken).Error
	}

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      userID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) anActiveCycleExistsFromTo(startDate, endDate string) error {
	return t.createCycle(startDate, endDate, "active")
}

func (t *testContext) aCompletedCycleExistsFromTo(startDate, endDate string) error {
	return t.createCycle(startDate, endDate, "completed")
}

func (t *testContext) createCycle(startDate, endDate, status string) error {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date '%s': %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return fmt.Errorf("invalid end date '%s': %w", endDate, err)
	}

	cycleID := uuid.New()
	t.currentCycleID = cycleID

	now := time.Now().UTC()
	cycleModel := &model.BudgetCycleModel{
		ID:        cycleID,
		UserID:    t.currentUserID,
		StartDate: start,
		EndDate:   end,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if status == "completed" {
		zero := decimal.Zero
		closedAt := end
		cycleModel.PlannedIncome = &zero
		cycleModel.ActualIncome = &zero
		cycleModel.PlannedExpenses = &zero
		cycleModel.ActualExpenses = &zero
		cycleModel.ActualSurplus = &zero
		cycleModel.ClosedAt = &closedAt
	}

	result := t.db.DbConn.Create(cycleModel)
	return result.Error
}

func (t *testContext) theCycleHasAnItemWithAmount(itemType, label, amount string) error {
	category := "other"
	if itemType == "variable" {
		category = "variable"
	}
	return t.createItem(itemType, label, category, amount, nil, nil)
}

func (t *testContext) theCycleHasAnItemInCategoryWithAmount(itemType, label, category, amount string) error {
	return t.createItem(itemType, label, category, amount, nil, nil)
}

func (t *testContext) theCycleHasADebtItem(label, amount, balance, interestRate string) error {
	return t.createItem("recurring", label, "loan", amount, &balance, &interestRate)
}

func (t *testContext) createItem(itemType, label, category, amount string, balance, interestRate *string) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	now := time.Now().UTC()
	itemModel := &model.BudgetItemModel{
		ID:        uuid.New(),
		CycleID:   t.currentCycleID,
		Type:      itemType,
		Label:     label,
		Category:  category,
		Amount:    &amt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if balance != nil {
		b, err := decimal.NewFromString(*balance)
		if err != nil {
			return fmt.Errorf("invalid balance '%s': %w", *balance, err)
		}
		itemModel.PrincipalBalance = &b
	}
	if interestRate != nil {
		r, err := decimal.NewFromString(*interestRate)
		if err != nil {
			return fmt.Errorf("invalid interest rate '%s': %w", *interestRate, err)
		}
		itemModel.InterestRate = &r
	}

	result := t.db.DbConn.Create(itemModel)
	return result.Error
}

func (t *testContext) aGoalExistsWithTargetAndCurrent(goalType, name, target, current string) error {
	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target amount '%s': %w", target, err)
	}
	currentAmount, err := decimal.NewFromString(current)
	if err != nil {
		return fmt.Errorf("invalid current amount '%s': %w", current, err)
	}

	goalID := uuid.New()
	t.currentGoalID = goalID

	strategy := "savings"
	if goalType == "debt_reduction" {
		strategy = "avalanche"
	}

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:            goalID,
		UserID:        t.currentUserID,
		Name:          name,
		GoalType:      goalType,
		Strategy:      strategy,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	result := t.db.DbConn.Create(goalModel)
	return result.Error
}

func (t *testContext) anAccountExists(name, accountType, balance string) error {
	bal, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid balance '%s': %w", balance, err)
	}

	accountID := uuid.New()
	t.accountIDs = append(t.accountIDs, accountID)

	now := time.Now().UTC()
	accountModel := &model.AccountModel{
		ID:        accountID,
		UserID:    t.currentUserID,
		Name:      name,
		Type:      accountType,
		Balance:   bal,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(accountModel)
	return result.Error
}

func (t *testContext) aBudgetShareInviteExistsFor(email string) error {
	t.inviteToken = fmt.Sprintf("test-invite-token-%s", uuid.New().String())
	t.ownerUserID = t.currentUserID

	inviteModel := &model.ShareInviteModel{
		ID:        uuid.New(),
		OwnerID:   t.currentUserID,
		Email:     email,
		Token:     t.inviteToken,
		Status:    "pending",
		ExpiresAt: time.Now().Add(72 * time.Hour),
		CreatedAt: time.Now(),
	}

	result := t.db.DbConn.Create(inviteModel)
	return result.Error
}

func (t *testContext) sharesTheirBudgetWith(ownerEmail, memberEmail string) error {
	if err := t.theUserExists(ownerEmail); err != nil {
		return err
	}
	if err := t.theUserExists(memberEmail); err != nil {
		return err
	}

	var owner, member model.UserModel
	if err := t.db.DbConn.Where("email = ?", ownerEmail).First(&owner).Error; err != nil {
		return err
	}
	if err := t.db.DbConn.Where("email = ?", memberEmail).First(&member).Error; err != nil {
		return err
	}

	t.ownerUserID = owner.ID

	shareModel := &model.BudgetShareModel{
		ID:        uuid.New(),
		OwnerID:   owner.ID,
		MemberID:  member.ID,
		Role:      "member",
		CreatedAt: time.Now(),
	}

	result := t.db.DbConn.Create(shareModel)
	return result.Error
}

func (t *testContext) aPendingActionRequestExistsForItem(label string) error {
	requestID := uuid.New()
	t.currentRequestID = requestID

	requestModel := &model.ActionRequestModel{
		ID:          requestID,
		CycleID:     t.currentCycleID,
		RequestedBy: t.currentUserID,
		Kind:        "add_item",
		ItemType:    "variable",
		ItemLabel:   label,
		Payload:     `{"amount":"50.00"}`,
		Status:      "pending",
		CreatedAt:   time.Now(),
	}

	result := t.db.DbConn.Create(requestModel)
	return result.Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{cycle_id}}", t.currentCycleID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{invite_token}}", t.inviteToken)
	content = strings.ReplaceAll(content, "{{request_id}}", t.currentRequestID.String())
	content = strings.ReplaceAll(content, "{{owner_id}}", t.ownerUserID.String())

	if len(t.accountIDs) > 0 {
		content = strings.ReplaceAll(content, "{{account_id}}", t.accountIDs[0].String())
	}
	if len(t.accountIDs) > 1 {
		content = strings.ReplaceAll(content, "{{account_id_2}}", t.accountIDs[1].String())
	}

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
		t.captureIdentifiers(responseBody)
	}

	return nil
}

// captureIdentifiers pulls ids out of create responses so later steps can
// reference them through placeholders. The shape of the body tells us what
// kind of resource came back.
func (t *testContext) captureIdentifiers(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasKey(body, "start_date"):
		t.currentCycleID = id
	case hasKey(body, "goal_type"):
		t.currentGoalID = id
	case hasKey(body, "kind"):
		t.currentRequestID = id
	case hasKey(body, "balance"):
		t.accountIDs = append(t.accountIDs, id)
	case hasKey(body, "transacted_at"):
		t.lastTransactionID = id
		t.transactionIDs = append(t.transactionIDs, id)
	}
}

func hasKey(body map[string]any, key string) bool {
	_, ok := body[key]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
