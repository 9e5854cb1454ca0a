package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"scheduler-sim/api"
	"scheduler-sim/config"
	"scheduler-sim/internal/responses"
)

func newTestApp() *fiber.App {
	handler := api.NewSchedulerHandlerImpl(&config.SimulatorConfig{Port: 9095, GanttWidth: 8})
	app := fiber.New()
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/fcfs", handler.FirstComeFirstServe)
	v1.Post("/sjf", handler.ShortestJobFirst)
	v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
	v1.Post("/all", handler.AllAlgorithms)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, payload
}

const scenarioBody = `{"processes":[
	{"id":"P1","arrival":0,"burst":5},
	{"arrival":1,"burst":3},
	{"arrival":2,"burst":8}
]}`

func TestFirstComeFirstServeEndpoint(t *testing.T) {
	app := newTestApp()
	status, payload := postJSON(t, app, "/api/v1/fcfs", scenarioBody)
	require.Equal(t, fiber.StatusOK, status)

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(payload, &response))

	require.Equal(t, "FCFS", response.Algorithm)
	require.Equal(t, 16, response.Makespan)
	require.Len(t, response.Processes, 3)
	require.Equal(t, "P2", response.Processes[1].ProcessID) // auto-labeled
	require.Equal(t, []int{5, 8, 16}, []int{
		response.Processes[0].Completion,
		response.Processes[1].Completion,
		response.Processes[2].Completion,
	})
	require.Len(t, response.Segments, 3)
}

func TestShortestRemainingTimeFirstEndpoint(t *testing.T) {
	app := newTestApp()
	body := `{"processes":[
		{"id":"P1","arrival":0,"burst":8},
		{"id":"P2","arrival":1,"burst":4},
		{"id":"P3","arrival":2,"burst":9},
		{"id":"P4","arrival":3,"burst":5}
	]}`
	status, payload := postJSON(t, app, "/api/v1/srtf", body)
	require.Equal(t, fiber.StatusOK, status)

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(payload, &response))
	require.Equal(t, "SRTF", response.Algorithm)
	require.Equal(t, 26, response.Makespan)
	require.Equal(t, 1, response.Processes[0].Preemptions)
}

func TestAllAlgorithmsEndpoint(t *testing.T) {
	app := newTestApp()
	status, payload := postJSON(t, app, "/api/v1/all", scenarioBody)
	require.Equal(t, fiber.StatusOK, status)

	var compare responses.CompareResponse
	require.NoError(t, json.Unmarshal(payload, &compare))
	require.Equal(t, "FCFS", compare.FirstComeFirstServe.Algorithm)
	require.Equal(t, "SJF", compare.ShortestJobFirst.Algorithm)
	require.Equal(t, "SRTF", compare.ShortestRemainingTimeFirst.Algorithm)
	require.LessOrEqual(t, compare.ShortestRemainingTimeFirst.AverageWaiting,
		compare.ShortestJobFirst.AverageWaiting)
}

func TestEndpointRejectsBadInput(t *testing.T) {
	app := newTestApp()
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"processes":`},
		{"empty workload", `{"processes":[]}`},
		{"negative arrival", `{"processes":[{"id":"P1","arrival":-1,"burst":2}]}`},
		{"zero burst", `{"processes":[{"id":"P1","arrival":0,"burst":0}]}`},
		{"duplicate id", `{"processes":[{"id":"P1","arrival":0,"burst":2},{"id":"P1","arrival":1,"burst":2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := postJSON(t, app, "/api/v1/sjf", tt.body)
			require.Equal(t, fiber.StatusBadRequest, status)
			var body map[string]string
			require.NoError(t, json.Unmarshal(payload, &body))
			require.Contains(t, body, "error")
		})
	}
}
