// Package mask formata e valida documentos brasileiros usados pelo backoffice:
// telefone celular e CNPJ.
package mask

import (
	"fmt"
	"strings"
	"unicode"
)

// pesos para o cálculo dos dígitos verificadores do CNPJ (módulo 11).
// O primeiro DV usa os 12 dígitos base; o segundo usa os 12 base + o primeiro DV.
var (
	cnpjWeightsFirst  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Digits devolve apenas os dígitos de s, descartando máscara e separadores.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Phone aplica a máscara de telefone brasileiro.
// 11 dígitos (celular): "(11) 99999-8888"; 10 dígitos (fixo): "(11) 9999-8888".
// Entradas parciais são mascaradas progressivamente; o excedente é descartado.
func Phone(s string) string {
	d := Digits(s)
	if d == "" {
		return ""
	}
	if len(d) > 11 {
		d = d[:11]
	}

	if len(d) <= 2 {
		return d
	}

	// posição do hífen: celular separa após 5 dígitos, fixo após 4
	split := 4
	if len(d) > 10 {
		split = 5
	}

	rest := d[2:]
	if len(rest) <= split {
		return fmt.Sprintf("(%s) %s", d[:2], rest)
	}
	return fmt.Sprintf("(%s) %s-%s", d[:2], rest[:split], rest[split:])
}

// CNPJ aplica a máscara progressiva "12.345.678/0001-99".
// Dígitos além de 14 são descartados.
func CNPJ(s string) string {
	d := Digits(s)
	if d == "" {
		return ""
	}
	if len(d) > 14 {
		d = d[:14]
	}

	groups := [5]int{2, 3, 3, 4, 2}
	seps := [4]string{".", ".", "/", "-"}

	var b strings.Builder
	for i, size := range groups {
		if d == "" {
			break
		}
		if i > 0 {
			b.WriteString(seps[i-1])
		}
		if len(d) < size {
			size = len(d)
		}
		b.WriteString(d[:size])
		d = d[size:]
	}
	return b.String()
}

// ValidateCNPJ valida os dois dígitos verificadores do CNPJ (módulo 11).
// Aceita o número com ou sem máscara.
func ValidateCNPJ(s string) error {
	d := Digits(s)
	if len(d) != 14 {
		return fmt.Errorf("mask: CNPJ deve ter 14 dígitos, foram encontrados %d", len(d))
	}
	if allSameDigit(d) {
		return fmt.Errorf("mask: CNPJ com dígitos repetidos é inválido")
	}

	first := checkDigit(d[:12], cnpjWeightsFirst[:])
	if d[12] != first {
		return fmt.Errorf("mask: primeiro dígito verificador inválido: esperado %c, recebido %c", first, d[12])
	}
	second := checkDigit(d[:13], cnpjWeightsSecond[:])
	if d[13] != second {
		return fmt.Errorf("mask: segundo dígito verificador inválido: esperado %c, recebido %c", second, d[13])
	}
	return nil
}

// checkDigit calcula um dígito verificador módulo 11 sobre base usando weights.
func checkDigit(base string, weights []int) byte {
	var sum int
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allSameDigit(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
