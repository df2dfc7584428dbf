package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Fco200/UES-Academic-Helper/domain/repositories"
	"github.com/Fco200/UES-Academic-Helper/pkg/di"
	"github.com/Fco200/UES-Academic-Helper/pkg/logger"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one reminder sweep now",
	Args:  cobra.NoArgs,
	RunE: withContainer(func(cmd *cobra.Command, _ []string, c *di.Container) error {
		ctx := logger.ContextWithRequestID(cmd.Context(), "cli-"+uuid.NewString()[:8])

		result, err := c.ReminderService.RunSweep(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sweep for %s (%s)\n", result.Date, c.Config.Reminder.Timezone)
		fmt.Fprintf(out, "  subjects scanned:   %d\n", result.SubjectsScanned)
		fmt.Fprintf(out, "  tasks checked:      %d\n", result.TasksChecked)
		fmt.Fprintf(out, "  reminders sent:     %d\n", result.Sent)
		fmt.Fprintf(out, "  dispatch failures:  %d\n", result.Failed)
		fmt.Fprintf(out, "  invalid due dates:  %d\n", result.SkippedInvalidDate)
		fmt.Fprintf(out, "  save failures:      %d\n", result.SaveFailures)
		fmt.Fprintf(out, "  took:               %s\n", result.Duration)
		return nil
	}),
}

var remindCmd = &cobra.Command{
	Use:   "remind [subject-id] [task-id]",
	Short: "Send the reminder of one task to its owner",
	Args:  cobra.ExactArgs(2),
	RunE: withContainer(func(cmd *cobra.Command, args []string, c *di.Container) error {
		subjectID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid subject ID %q", args[0])
		}
		taskID, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid task ID %q", args[1])
		}

		ctx := cmd.Context()
		subject, err := c.SubjectRepository.GetByID(ctx, subjectID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("subject %s not found", subjectID)
			}
			return err
		}

		delivery, err := c.ReminderService.SendTaskReminder(ctx, subject.OwnerValue(), subjectID, taskID)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Reminder sent to %s via %s (message %s)\n", subject.Owner, delivery.Channel, delivery.MessageID)
		return nil
	}),
}
