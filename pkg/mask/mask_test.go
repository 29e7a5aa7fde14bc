package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WallyssonSousa/seller-backoffice/pkg/mask"
)

func TestPhone_Celular11Digitos(t *testing.T) {
	assert.Equal(t, "(11) 99999-8888", mask.Phone("11999998888"))
}

func TestPhone_Fixo10Digitos(t *testing.T) {
	assert.Equal(t, "(11) 9999-8888", mask.Phone("1199998888"))
}

func TestPhone_EntradaParcial(t *testing.T) {
	assert.Equal(t, "", mask.Phone(""))
	assert.Equal(t, "1", mask.Phone("1"))
	assert.Equal(t, "11", mask.Phone("11"))
	assert.Equal(t, "(11) 999", mask.Phone("11999"))
	assert.Equal(t, "(11) 9999-9", mask.Phone("1199999"))
}

func TestPhone_DescartaNaoDigitosEExcedente(t *testing.T) {
	assert.Equal(t, "(11) 99999-8888", mask.Phone("(11) 99999-8888"))
	assert.Equal(t, "(11) 99999-8888", mask.Phone("119999988889999"))
}

func TestCNPJ_Completo(t *testing.T) {
	assert.Equal(t, "12.345.678/0001-99", mask.CNPJ("12345678000199"))
}

func TestCNPJ_Progressivo(t *testing.T) {
	assert.Equal(t, "", mask.CNPJ(""))
	assert.Equal(t, "12", mask.CNPJ("12"))
	assert.Equal(t, "12.3", mask.CNPJ("123"))
	assert.Equal(t, "12.345", mask.CNPJ("12345"))
	assert.Equal(t, "12.345.678", mask.CNPJ("12345678"))
	assert.Equal(t, "12.345.678/0001", mask.CNPJ("123456780001"))
	assert.Equal(t, "12.345.678/0001-9", mask.CNPJ("1234567800019"))
}

func TestCNPJ_JaMascaradoEExcedente(t *testing.T) {
	assert.Equal(t, "12.345.678/0001-99", mask.CNPJ("12.345.678/0001-99"))
	assert.Equal(t, "12.345.678/0001-99", mask.CNPJ("12345678000199000"))
}

func TestValidateCNPJ_Valido(t *testing.T) {
	// 11.222.333/0001-81 tem ambos os DVs corretos
	require.NoError(t, mask.ValidateCNPJ("11.222.333/0001-81"))
	require.NoError(t, mask.ValidateCNPJ("11222333000181"))
}

func TestValidateCNPJ_DigitoVerificadorErrado(t *testing.T) {
	err := mask.ValidateCNPJ("11.222.333/0001-82")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dígito verificador")
}

func TestValidateCNPJ_TamanhoErrado(t *testing.T) {
	require.Error(t, mask.ValidateCNPJ("1122233300018"))
	require.Error(t, mask.ValidateCNPJ(""))
}

func TestValidateCNPJ_DigitosRepetidos(t *testing.T) {
	require.Error(t, mask.ValidateCNPJ("00000000000000"))
}
