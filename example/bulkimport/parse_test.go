package bulkimport_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/example/bulkimport"
	"github.com/AntonStoeckl/library-circulation-go/testutil/circulationtest"
)

func Test_ParseFreeText_NumberAndName(t *testing.T) {
	// setup
	input := "101 Ada Lovelace\n\n102\tGrace Hopper\nAlan Turing\n"

	// act
	inputs := bulkimport.ParseFreeText(input)

	// assert
	require.Len(t, inputs, 3)

	require.NotNil(t, inputs[0].Number)
	assert.Equal(t, 101, *inputs[0].Number)
	assert.Equal(t, "Ada Lovelace", inputs[0].Name)

	require.NotNil(t, inputs[1].Number)
	assert.Equal(t, 102, *inputs[1].Number)
	assert.Equal(t, "Grace Hopper", inputs[1].Name)

	assert.Nil(t, inputs[2].Number)
	assert.Equal(t, "Alan Turing", inputs[2].Name)
}

func Test_ParseFreeText_NonDigitFirstTokenDegradesToName(t *testing.T) {
	// act
	inputs := bulkimport.ParseFreeText("10a Ada Lovelace\n-5 Grace Hopper")

	// assert
	require.Len(t, inputs, 2)
	assert.Nil(t, inputs[0].Number)
	assert.Equal(t, "10a Ada Lovelace", inputs[0].Name)
	assert.Nil(t, inputs[1].Number)
	assert.Equal(t, "-5 Grace Hopper", inputs[1].Name)
}

func Test_ParseFreeText_NumberOnlyLineIsAName(t *testing.T) {
	// act
	inputs := bulkimport.ParseFreeText("123")

	// assert
	require.Len(t, inputs, 1)
	assert.Nil(t, inputs[0].Number)
	assert.Equal(t, "123", inputs[0].Name)
}

func Test_ParseCSV_NumberAndName(t *testing.T) {
	// setup
	input := "101,Ada Lovelace\n\n102,Grace Hopper\nAlan Turing\n"

	// act
	inputs := bulkimport.ParseCSV(input)

	// assert
	require.Len(t, inputs, 3)

	require.NotNil(t, inputs[0].Number)
	assert.Equal(t, 101, *inputs[0].Number)
	assert.Equal(t, "Ada Lovelace", inputs[0].Name)

	require.NotNil(t, inputs[1].Number)
	assert.Equal(t, 102, *inputs[1].Number)

	assert.Nil(t, inputs[2].Number)
	assert.Equal(t, "Alan Turing", inputs[2].Name)
}

func Test_ParseCSV_ExtraCommasRejoinedWithSpaces(t *testing.T) {
	// act
	inputs := bulkimport.ParseCSV("Lovelace,Ada\n201,Hopper,Grace")

	// assert
	require.Len(t, inputs, 2)

	assert.Nil(t, inputs[0].Number)
	assert.Equal(t, "Lovelace Ada", inputs[0].Name)

	require.NotNil(t, inputs[1].Number)
	assert.Equal(t, 201, *inputs[1].Number)
	assert.Equal(t, "Hopper Grace", inputs[1].Name)
}

func Test_ParseFreeText_FeedsBulkRegistration(t *testing.T) {
	// setup
	store, _ := circulationtest.GivenStore(t, nil)
	inputs := bulkimport.ParseFreeText("5 Ada Lovelace\n2 Grace Hopper")

	// act
	result := store.AddStudentsBulk(context.Background(), inputs)

	// assert
	require.Len(t, result.Added, 2)
	assert.Empty(t, result.Failed)

	students := store.Students()
	require.Len(t, students, 2)
	assert.Equal(t, 2, students[0].Number)
	assert.Equal(t, 5, students[1].Number)
}
