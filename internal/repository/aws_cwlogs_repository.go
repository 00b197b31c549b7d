package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"

	dto "github.com/jianhuanggo/aws-lambda-apigateway3/pkg/types"
)

// CWLogsRepository wraps the CloudWatch Logs operations.
type CWLogsRepository struct {
	API CloudWatchLogsAPI
}

// RecentEvents returns up to limit events from the most recently written
// stream of the given log group, oldest first. A group with no streams yields
// no events.
func (r *CWLogsRepository) RecentEvents(ctx context.Context, logGroup string, limit int32) ([]dto.LogEvent, error) {
	streams, err := r.API.DescribeLogStreams(ctx, &cw.DescribeLogStreamsInput{
		LogGroupName: aws.String(logGroup),
		OrderBy:      types.OrderByLastEventTime,
		Descending:   aws.Bool(true),
		Limit:        aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("DescribeLogStreams failed: %w", err)
	}
	if len(streams.LogStreams) == 0 {
		return nil, nil
	}

	out, err := r.API.GetLogEvents(ctx, &cw.GetLogEventsInput{
		LogGroupName:  aws.String(logGroup),
		LogStreamName: streams.LogStreams[0].LogStreamName,
		Limit:         aws.Int32(limit),
		StartFromHead: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("GetLogEvents failed: %w", err)
	}

	events := make([]dto.LogEvent, 0, len(out.Events))
	for _, ev := range out.Events {
		events = append(events, dto.LogEvent{
			Timestamp: time.UnixMilli(aws.ToInt64(ev.Timestamp)),
			Message:   aws.ToString(ev.Message),
		})
	}
	return events, nil
}
