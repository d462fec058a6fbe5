package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"commentpulse/internal/models"
)

// DynamoStore implements the same store contract on DynamoDB: a conditional
// put stands in for the conflict-is-a-no-op insert, and UpdateItem
// expressions handle selective annotation backfill.
type DynamoStore struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoStore(client *dynamodb.Client, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

func (s *DynamoStore) EnsureSchema(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("[DynamoStore] Failed to describe table: %w", err)
	}

	_, err = s.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(s.table),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("platform"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("comment_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("platform"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("comment_id"), KeyType: types.KeyTypeRange},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("[DynamoStore] Failed to create table: %w", err)
	}

	slog.Info("[DynamoStore] Created comments table", slog.String("table", s.table))
	return nil
}

func (s *DynamoStore) Upsert(ctx context.Context, comments []models.AnnotatedComment) (int, error) {
	inserted := 0
	for _, comment := range comments {
		item, err := attributevalue.MarshalMap(comment)
		if err != nil {
			slog.Warn("[DynamoStore] Failed to marshal comment",
				slog.String("comment_id", comment.CommentID),
				slog.String("error", err.Error()))
			continue
		}

		_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(s.table),
			Item:                item,
			ConditionExpression: aws.String("attribute_not_exists(comment_id)"),
		})
		if err != nil {
			var conflict *types.ConditionalCheckFailedException
			if errors.As(err, &conflict) {
				continue // existing row preserved
			}
			slog.Warn("[DynamoStore] Row put failed",
				slog.String("comment_id", comment.CommentID),
				slog.String("error", err.Error()))
			continue
		}
		inserted++
	}

	slog.Info("[DynamoStore] Upsert complete",
		slog.Int("batch", len(comments)), slog.Int("inserted", inserted))
	return inserted, nil
}

func (s *DynamoStore) BackfillAnnotation(ctx context.Context, platform models.Platform, commentID string, fields BackfillFields) error {
	if len(fields) == 0 {
		return nil
	}

	expression := ""
	names := make(map[string]string, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))
	i := 0
	for column, value := range fields {
		if !IsAnnotationColumn(column) {
			return fmt.Errorf("[DynamoStore] %q is not a backfillable annotation column", column)
		}
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return fmt.Errorf("[DynamoStore] Failed to marshal %q: %w", column, err)
		}

		placeholder := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		if expression == "" {
			expression = "SET "
		} else {
			expression += ", "
		}
		expression += placeholder + " = " + valueKey
		names[placeholder] = column
		values[valueKey] = av
		i++
	}

	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"platform":   &types.AttributeValueMemberS{Value: string(platform)},
			"comment_id": &types.AttributeValueMemberS{Value: commentID},
		},
		UpdateExpression:          aws.String(expression),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return fmt.Errorf("[DynamoStore] Backfill failed for %s/%s: %w", platform, commentID, err)
	}
	return nil
}

func (s *DynamoStore) Close() {}
