package api

import (
	"errors"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"

	"scheduler-sim/config"
	"scheduler-sim/internal/core"
	"scheduler-sim/internal/requests"
	"scheduler-sim/internal/responses"
	"scheduler-sim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SimulatorConfig
}

func NewSchedulerHandlerImpl(config *config.SimulatorConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.runSingle(ctx, schedulers.ScheduleFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.runSingle(ctx, schedulers.ScheduleShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.runSingle(ctx, schedulers.ScheduleShortestRemainingTimeFirst)
}

// AllAlgorithms runs the three engines on the same input. Each engine owns a
// private copy of the process list, so the runs are independent pure
// computations and can proceed concurrently.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	processes, err := parseProcesses(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	runs := []func([]core.Process) schedulers.Result{
		schedulers.ScheduleFirstComeFirstServe,
		schedulers.ScheduleShortestJobFirst,
		schedulers.ScheduleShortestRemainingTimeFirst,
	}
	results := make([]schedulers.Result, len(runs))
	var wg sync.WaitGroup
	wg.Add(len(runs))
	for i, run := range runs {
		go func(i int, run func([]core.Process) schedulers.Result) {
			defer wg.Done()
			results[i] = run(processes)
		}(i, run)
	}
	wg.Wait()

	var compare responses.CompareResponse
	if compare.FirstComeFirstServe, err = schedulers.GenerateAnalytics(&results[0]); err == nil {
		if compare.ShortestJobFirst, err = schedulers.GenerateAnalytics(&results[1]); err == nil {
			compare.ShortestRemainingTimeFirst, err = schedulers.GenerateAnalytics(&results[2])
		}
	}
	if err != nil {
		log.Println("simulation failed:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}

	return ctx.JSON(compare)
}

func (s *SchedulerHandlerImpl) runSingle(ctx *fiber.Ctx, schedule func([]core.Process) schedulers.Result) error {
	processes, err := parseProcesses(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result := schedule(processes)
	response, err := schedulers.GenerateAnalytics(&result)
	if err != nil {
		log.Println("simulation failed:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}

	return ctx.JSON(response)
}

// parseProcesses decodes and validates the request body. Validation runs once
// here, before any simulation starts.
func parseProcesses(ctx *fiber.Ctx) ([]core.Process, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return nil, errors.New("invalid request format")
	}
	return request.Normalize()
}
