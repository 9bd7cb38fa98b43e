package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"todo-api/internal/models"
	"todo-api/internal/repositories"
)

// todoRepository implements repositories.TodoRepository against DynamoDB
type todoRepository struct {
	client    *dynamodb.Client
	tableName string
}

// NewTodoRepository creates a DynamoDB-backed todo repository
func NewTodoRepository(client *dynamodb.Client, tableName string) repositories.TodoRepository {
	return &todoRepository{
		client:    client,
		tableName: tableName,
	}
}

// Create persists a new todo with PutItem. The id is freshly generated by
// the caller, so no existence condition is applied.
func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	item, err := attributevalue.MarshalMap(todo)
	if err != nil {
		return repositories.NewRepositoryError("create", "todo", todo.ID,
			fmt.Errorf("failed to marshal todo: %w", err))
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return repositories.NewRepositoryError("create", "todo", todo.ID, err)
	}

	return nil
}

// List scans the whole table, following LastEvaluatedKey so results are not
// truncated when the scan spills over a page boundary.
func (r *todoRepository) List(ctx context.Context) ([]models.Todo, error) {
	todos := []models.Todo{}

	var startKey map[string]types.AttributeValue
	for {
		result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "todo", "", err)
		}

		var page []models.Todo
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, repositories.NewRepositoryError("list", "todo", "",
				fmt.Errorf("failed to unmarshal todos: %w", err))
		}
		todos = append(todos, page...)

		if result.LastEvaluatedKey == nil {
			return todos, nil
		}
		startKey = result.LastEvaluatedKey
	}
}

// GetByID retrieves one todo by its key
func (r *todoRepository) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       todoKey(id),
	})
	if err != nil {
		return nil, repositories.NewRepositoryError("get", "todo", id, err)
	}

	if len(result.Item) == 0 {
		return nil, repositories.NotFoundError("todo", id)
	}

	var todo models.Todo
	if err := attributevalue.UnmarshalMap(result.Item, &todo); err != nil {
		return nil, repositories.NewRepositoryError("get", "todo", id,
			fmt.Errorf("failed to unmarshal todo: %w", err))
	}

	return &todo, nil
}

// Update sets text, checked and updatedAt on an existing item. The
// attribute_exists condition turns an update of a missing id into
// ErrNotFound instead of silently inserting a partial item.
func (r *todoRepository) Update(ctx context.Context, todo *models.Todo) error {
	update := expression.Set(expression.Name("text"), expression.Value(todo.Text)).
		Set(expression.Name("checked"), expression.Value(todo.Checked)).
		Set(expression.Name("updatedAt"), expression.Value(todo.UpdatedAt))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name("id"))).
		Build()
	if err != nil {
		return repositories.NewRepositoryError("update", "todo", todo.ID,
			fmt.Errorf("failed to build update expression: %w", err))
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       todoKey(todo.ID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return repositories.NotFoundError("todo", todo.ID)
		}
		return repositories.NewRepositoryError("update", "todo", todo.ID, err)
	}

	return nil
}

// Delete removes a todo unconditionally; deleting an absent id succeeds
func (r *todoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       todoKey(id),
	})
	if err != nil {
		return repositories.NewRepositoryError("delete", "todo", id, err)
	}

	return nil
}

func todoKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
